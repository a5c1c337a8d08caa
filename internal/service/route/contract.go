//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
)

// Gateway - внешний провайдер маршрутизации. Любой сбой транспорта
// или непригодный ответ приходит как ErrEstimationFailed.
type Gateway interface {
	Estimate(ctx context.Context, origin, destination entities.GeoPoint) (*entities.RouteEstimate, error)
}

type OrderStore interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type Events interface {
	Publish(event watch.Event)
}
