package entities

import "time"

type GeoPoint struct {
	Lat float64
	Lng float64
}

func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// RoutePoint - одна запись append-only истории маршрута заказа.
// ReceivedAt задает порядок в логе, CapturedAt может приходить
// не по порядку из-за сетевого джиттера.
type RoutePoint struct {
	Lat        float64
	Lng        float64
	CapturedAt time.Time
	ReceivedAt time.Time
}

func (p RoutePoint) Point() GeoPoint {
	return GeoPoint{Lat: p.Lat, Lng: p.Lng}
}

// PositionSample - сырой отсчет геолокации с устройства курьера.
type PositionSample struct {
	Lat        float64
	Lng        float64
	CapturedAt time.Time
}

// RouteEstimate - последний успешный расчет маршрута от внешнего
// провайдера. ComputedAt позволяет клиентам понять насколько
// оценка устарела.
type RouteEstimate struct {
	Path       []GeoPoint
	ETASeconds int64
	ComputedAt time.Time
}

// DispatchResult - результат резервирования курьера под заказ.
type DispatchResult struct {
	OrderID    string
	CourierID  int64
	AssignedAt time.Time
}
