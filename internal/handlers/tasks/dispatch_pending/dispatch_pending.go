package dispatch_pending

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	DispatchPending(ctx context.Context) (int, error)
}

// DispatchPending периодически разбирает заказы в preparing без
// курьера. Курсор не ведется намеренно: заказ, которому не хватило
// курьера на прошлом тике, должен попасть и в следующую выборку.
type DispatchPending struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *DispatchPending {
	return &DispatchPending{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DispatchPending) TTL() time.Duration {
	return d.interval
}

func (d *DispatchPending) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	assigned, err := d.service.DispatchPending(ctxWithTimeout)

	if assigned > 0 {
		d.log.With(
			logger.NewField("assigned_orders", assigned),
		).Info("dispatch pending")
	}

	return err
}

func (d *DispatchPending) Info() string {
	return "dispatch pending orders"
}
