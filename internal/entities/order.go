package entities

import "time"

type Order struct {
	ID              string
	CustomerID      int64
	FoodItemID      int64
	Quantity        int32
	UnitPriceCents  int64
	Status          OrderStatusType
	CourierID       *int64
	DeliveryAddress DeliveryAddress
	FeedbackGiven   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderPreparing      OrderStatusType = "preparing"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal: из delivered и cancelled переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type DeliveryAddress struct {
	Line       string
	City       string
	PostalCode string
	Lat        *float64
	Lng        *float64
}

// Destination возвращает координаты доставки, если адрес геокодирован.
func (a DeliveryAddress) Destination() (GeoPoint, bool) {
	if a.Lat == nil || a.Lng == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *a.Lat, Lng: *a.Lng}, true
}

type OrderModify struct {
	ID              *string
	CustomerID      *int64
	FoodItemID      *int64
	Quantity        *int32
	UnitPriceCents  *int64
	Status          *OrderStatusType
	CourierID       *int64
	DeliveryAddress *DeliveryAddress
	FeedbackGiven   *bool
	CreatedAt       *time.Time
}

// OrderDetails - заказ вместе с историей маршрута для polling-клиентов.
type OrderDetails struct {
	Order        Order
	RouteHistory []RoutePoint
}
