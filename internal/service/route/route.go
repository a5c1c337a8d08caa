package route

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
)

// Estimator держит последнюю успешную оценку маршрута по каждому
// заказу. Пересчет запускается трекером по принятым отсчетам,
// а не на каждый poll клиента - внешние вызовы ограничены дебаунсом.
type Estimator struct {
	gateway Gateway
	orders  OrderStore
	events  Events

	mu        sync.RWMutex
	estimates map[string]entities.RouteEstimate
}

func New(gateway Gateway, orders OrderStore, events Events) *Estimator {
	return &Estimator{
		gateway:   gateway,
		orders:    orders,
		events:    events,
		estimates: make(map[string]entities.RouteEstimate),
	}
}

// Estimate запрашивает провайдера напрямую, без кэша.
func (e *Estimator) Estimate(ctx context.Context, origin, destination entities.GeoPoint) (*entities.RouteEstimate, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, ErrInvalidPoint
	}

	estimate, err := e.gateway.Estimate(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("estimate route: %w", err)
	}

	return estimate, nil
}

// LastEstimate возвращает последнюю успешную оценку по заказу.
func (e *Estimator) LastEstimate(orderID string) (*entities.RouteEstimate, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	e.mu.RLock()
	estimate, ok := e.estimates[orderID]
	e.mu.RUnlock()

	if !ok {
		return nil, ErrNoEstimate
	}

	return &estimate, nil
}

// RefreshOrder пересчитывает оценку от текущей позиции курьера до
// адреса доставки. Сбой провайдера гасится: прежняя оценка остается
// в кэше, наружу уходит nil - доставка из-за ETA не останавливается.
func (e *Estimator) RefreshOrder(ctx context.Context, orderID string, origin entities.GeoPoint) error {
	if orderID == "" {
		return ErrInvalidOrderID
	}
	if !origin.Valid() {
		return ErrInvalidPoint
	}

	order, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	destination, ok := order.DeliveryAddress.Destination()
	if !ok {
		// адрес без геокода - оценивать нечего
		return nil
	}

	estimate, err := e.gateway.Estimate(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, ErrEstimationFailed) {
			return nil
		}
		return fmt.Errorf("estimate route: %w", err)
	}

	e.mu.Lock()
	e.estimates[orderID] = *estimate
	e.mu.Unlock()

	e.events.Publish(watch.Event{
		Type:       watch.EventETA,
		OrderID:    orderID,
		CourierID:  order.CourierID,
		ETASeconds: pointer.To(estimate.ETASeconds),
		At:         time.Now().UTC(),
	})

	return nil
}

// Forget выкидывает кэш заказа после терминального статуса.
func (e *Estimator) Forget(orderID string) {
	e.mu.Lock()
	delete(e.estimates, orderID)
	e.mu.Unlock()
}
