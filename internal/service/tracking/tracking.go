package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
	"dispatch/pkg/geo"
)

// DefaultMovementThresholdKm - порог дебаунса GPS-потока. Отсчеты
// ближе порога к последней принятой позиции отбрасываются.
const DefaultMovementThresholdKm = 0.1

// Tracker принимает сырые отсчеты геолокации курьера, фильтрует шум
// и раскладывает принятые отсчеты в текущую позицию курьера и
// append-only историю маршрута активного заказа.
//
// База дебаунса живет в памяти процесса и привязана к сессии: после
// ResetSession или рестарта первый отсчет проходит без сравнения.
type Tracker struct {
	couriers    CourierStore
	orders      OrderStore
	refresher   RouteRefresher
	events      Events
	thresholdKm float64

	mu        sync.Mutex
	baselines map[int64]entities.GeoPoint
}

func New(
	couriers CourierStore,
	orders OrderStore,
	refresher RouteRefresher,
	events Events,
	thresholdKm float64,
) *Tracker {
	if thresholdKm <= 0 {
		thresholdKm = DefaultMovementThresholdKm
	}

	return &Tracker{
		couriers:    couriers,
		orders:      orders,
		refresher:   refresher,
		events:      events,
		thresholdKm: thresholdKm,
		baselines:   make(map[int64]entities.GeoPoint),
	}
}

// ResetSession закрывает сессию геолокации курьера: следующий отсчет
// принимается безусловно, без сравнения со старой базой дебаунса.
func (t *Tracker) ResetSession(courierID int64) {
	t.mu.Lock()
	delete(t.baselines, courierID)
	t.mu.Unlock()
}

// Report обрабатывает один отсчет. Первый отсчет сессии принимается
// безусловно, дальше действует порог дебаунса. Обновление позиции и
// запись в историю - два независимых write: сбой одного не
// откатывает другой.
func (t *Tracker) Report(ctx context.Context, courierID int64, sample entities.PositionSample) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}
	if !isValidSample(sample) {
		return ErrInvalidSample
	}

	if _, err := t.couriers.GetByID(ctx, courierID); err != nil {
		return fmt.Errorf("get courier: %w", err)
	}

	t.mu.Lock()
	baseline, inSession := t.baselines[courierID]
	t.mu.Unlock()

	if inSession {
		distanceKm := geo.HaversineKm(
			baseline.Lat, baseline.Lng,
			sample.Lat, sample.Lng,
		)
		if distanceKm < t.thresholdKm {
			return nil
		}
	}

	point := entities.GeoPoint{Lat: sample.Lat, Lng: sample.Lng}

	if err := t.couriers.UpdateLocation(ctx, courierID, point, sample.CapturedAt); err != nil {
		return fmt.Errorf("update courier location: %w", err)
	}

	t.mu.Lock()
	t.baselines[courierID] = point
	t.mu.Unlock()

	orderID, err := t.appendToActiveOrder(ctx, courierID, sample)
	if err != nil {
		return err
	}

	if orderID == "" {
		return nil
	}

	t.events.Publish(watch.Event{
		Type:      watch.EventPosition,
		OrderID:   orderID,
		CourierID: &courierID,
		Point: &entities.RoutePoint{
			Lat:        sample.Lat,
			Lng:        sample.Lng,
			CapturedAt: sample.CapturedAt,
			ReceivedAt: time.Now().UTC(),
		},
		At: time.Now().UTC(),
	})

	if err := t.refresher.RefreshOrder(ctx, orderID, point); err != nil {
		return fmt.Errorf("refresh route estimate: %w", err)
	}

	return nil
}

// appendToActiveOrder пишет отсчет в историю маршрута, если курьер
// сейчас везет заказ. Возвращает id заказа или пустую строку.
func (t *Tracker) appendToActiveOrder(ctx context.Context, courierID int64, sample entities.PositionSample) (string, error) {
	order, err := t.orders.GetActiveByCourier(ctx, courierID)
	if err != nil {
		if errors.Is(err, ErrNoActiveOrder) {
			return "", nil
		}
		return "", fmt.Errorf("get active order: %w", err)
	}

	routePoint := entities.RoutePoint{
		Lat:        sample.Lat,
		Lng:        sample.Lng,
		CapturedAt: sample.CapturedAt,
		ReceivedAt: time.Now().UTC(),
	}
	if err := t.orders.AppendRoutePoint(ctx, order.ID, routePoint); err != nil {
		return "", fmt.Errorf("append route point: %w", err)
	}

	return order.ID, nil
}
