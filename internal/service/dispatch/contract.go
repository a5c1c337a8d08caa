//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
)

type Orders interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// MarkOutForDelivery - compare-and-set: заказ должен быть в preparing
	// без назначенного курьера, иначе ErrOrderAlreadyAssigned.
	MarkOutForDelivery(ctx context.Context, orderID string, courierID int64) error

	ListUnassigned(ctx context.Context, limit int) ([]entities.Order, error)
}

type Couriers interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)

	// GetForDispatch возвращает первого подходящего курьера
	// (is_online, не is_busy, по возрастанию id) с блокировкой строки,
	// чтобы конкурентные вызовы не выбрали одного и того же.
	GetForDispatch(ctx context.Context) (*entities.Courier, error)
}

type CourierRegistry interface {
	Reserve(ctx context.Context, courierID int64) error
}

type Events interface {
	Publish(event watch.Event)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
