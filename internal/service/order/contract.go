//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetRouteHistory(ctx context.Context, orderID string) ([]entities.RoutePoint, error)

	// Условные обновления: WHERE-условие кодирует допустимый переход,
	// ноль затронутых строк означает гонку или неверное состояние.
	CancelPreparing(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string, courierID int64) error
	SetFeedbackGiven(ctx context.Context, orderID string) error
}

type CourierRegistry interface {
	Release(ctx context.Context, courierID int64) error
}

type DispatchService interface {
	Assign(ctx context.Context, orderID string) (*entities.DispatchResult, error)
}

type Events interface {
	Publish(event watch.Event)
}

// EstimateCache выкидывает оценку маршрута по заказу. Дергается на
// терминальных переходах: ETA завершенного заказа больше не читается.
type EstimateCache interface {
	Forget(orderID string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
