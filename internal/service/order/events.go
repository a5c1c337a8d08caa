package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// ProcessOrderStatusChange обрабатывает событие order.status.changed.
// Событие - только сигнал: перед обработкой заказ перечитывается из
// хранилища, устаревшие события отсекаются по расхождению статуса.
func (l *Lifecycle) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}

	orderEntity, err := l.repository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if orderEntity.Status != *orderModify.Status {
		return orderEntity, fmt.Errorf("%w: event %s, actual %s",
			ErrStatusMismatch, *orderModify.Status, orderEntity.Status)
	}

	executeFn, err := l.statusFactory.GetHandler(orderEntity.Status)
	if err != nil {
		// статусы без обработчика пропускаются молча
		if errors.Is(err, ErrUndefinedStatus) {
			return orderEntity, nil
		}
		return orderEntity, err
	}

	if err := executeFn(ctx, orderEntity.ID); err != nil {
		return nil, err
	}

	return orderEntity, nil
}
