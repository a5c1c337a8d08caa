//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
)

type CourierStore interface {
	GetByID(ctx context.Context, courierID int64) (*entities.Courier, error)
	UpdateLocation(ctx context.Context, courierID int64, point entities.GeoPoint, capturedAt time.Time) error
}

type OrderStore interface {
	// GetActiveByCourier возвращает заказ курьера в out_for_delivery
	// или ErrNoActiveOrder, если курьер без заказа.
	GetActiveByCourier(ctx context.Context, courierID int64) (*entities.Order, error)
	// AppendRoutePoint идемпотентна: повторная отправка того же
	// отсчета не создает дубликата записи.
	AppendRoutePoint(ctx context.Context, orderID string, point entities.RoutePoint) error
}

// RouteRefresher пересчитывает оценку маршрута по принятому отсчету.
// Сбой внешнего провайдера гасится внутри и ошибкой не считается.
type RouteRefresher interface {
	RefreshOrder(ctx context.Context, orderID string, origin entities.GeoPoint) error
}

type Events interface {
	Publish(event watch.Event)
}
