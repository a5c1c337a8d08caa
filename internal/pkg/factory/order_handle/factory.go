package order_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

type Dispatcher interface {
	Assign(ctx context.Context, orderID string) (*entities.DispatchResult, error)
}

type EstimateCache interface {
	Forget(orderID string)
}

// StatusHandlerFactory раздает обработчики по статусу заказа из
// события. Статусы без обработчика (out_for_delivery) пропускаются
// потребителем по ErrUndefinedStatus.
type StatusHandlerFactory struct {
	dispatcher Dispatcher
	estimates  EstimateCache
}

func NewStatusHandlerFactory(dispatcher Dispatcher, estimates EstimateCache) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatcher: dispatcher,
		estimates:  estimates,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderPreparing:
		return f.preparingHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) preparingHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatcher.Assign(ctx, orderID)
	if err != nil {
		return fmt.Errorf("assign courier for preparing order %s: %w", orderID, err)
	}
	return nil
}

// Терминальные статусы чистят кэш оценок маршрута: по завершенному
// заказу ETA больше никто не запросит.
func (f *StatusHandlerFactory) cancelledHandler(_ context.Context, orderID string) error {
	f.estimates.Forget(orderID)
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(_ context.Context, orderID string) error {
	f.estimates.Forget(orderID)
	return nil
}
