package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
	"dispatch/internal/repository"
)

// Сколько ожидающих заказов разбирается за один проход фоновой задачи.
const pendingBatchSize = 50

// Dispatch резервирует курьера под заказ.
//
// Политика выбора - first match по возрастанию id, без ранжирования
// по близости. Так делает исходная система; политика осознанно
// сохранена, а не оптимизирована.
type Dispatch struct {
	orders    Orders
	couriers  Couriers
	registry  CourierRegistry
	events    Events
	txManager TxManager
}

func New(
	orders Orders,
	couriers Couriers,
	registry CourierRegistry,
	events Events,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		orders:    orders,
		couriers:  couriers,
		registry:  registry,
		events:    events,
		txManager: txManager,
	}
}

// Assign подбирает свободного курьера и атомарно резервирует его:
// is_busy курьера и статус/courier_id заказа меняются в одной
// транзакции, двойное бронирование исключено.
func (d *Dispatch) Assign(ctx context.Context, orderID string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	result := entities.DispatchResult{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := validateDispatchable(order); err != nil {
			return err
		}

		courier, err := d.couriers.GetForDispatch(ctx)
		if err != nil {
			return fmt.Errorf("find courier for dispatch: %w", err)
		}

		return d.reserve(ctx, orderID, courier.ID, &result)
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: order %s", ErrConcurrentUpdate, orderID)
		}
		return nil, err
	}

	d.publishAssigned(result)
	return &result, nil
}

// ForceAssign - ручное назначение оператором. Фильтр доступности
// пропускается (курьер может быть офлайн), но is_busy все равно
// ставится атомарно: занятый курьер не переназначается молча.
func (d *Dispatch) ForceAssign(ctx context.Context, orderID string, courierID int64) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	result := entities.DispatchResult{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := validateDispatchable(order); err != nil {
			return err
		}

		if _, err := d.couriers.GetByID(ctx, courierID); err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		return d.reserve(ctx, orderID, courierID, &result)
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: order %s", ErrConcurrentUpdate, orderID)
		}
		return nil, err
	}

	d.publishAssigned(result)
	return &result, nil
}

// DispatchPending разбирает заказы в preparing без курьера, старые
// первыми. Возвращает число успешных назначений. Отсутствие курьеров
// останавливает проход до следующего тика - это не ошибка.
func (d *Dispatch) DispatchPending(ctx context.Context) (int, error) {
	pending, err := d.orders.ListUnassigned(ctx, pendingBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list unassigned orders: %w", err)
	}

	assigned := 0
	for _, order := range pending {
		_, err := d.Assign(ctx, order.ID)
		switch {
		case err == nil:
			assigned++
		case errors.Is(err, ErrNoCourierAvailable):
			return assigned, nil
		case errors.Is(err, ErrOrderAlreadyAssigned), errors.Is(err, ErrOrderNotPreparing):
			// заказ увели конкурентным вызовом между выборкой и назначением
			continue
		case errors.Is(err, ErrConcurrentUpdate):
			// проигрыш serializable-гонки: заказ перечитается на следующем тике
			continue
		default:
			return assigned, fmt.Errorf("dispatch pending order %s: %w", order.ID, err)
		}
	}

	return assigned, nil
}

func (d *Dispatch) reserve(ctx context.Context, orderID string, courierID int64, result *entities.DispatchResult) error {
	if err := d.registry.Reserve(ctx, courierID); err != nil {
		return err
	}

	if err := d.orders.MarkOutForDelivery(ctx, orderID, courierID); err != nil {
		return fmt.Errorf("mark order out for delivery: %w", err)
	}

	*result = entities.DispatchResult{
		OrderID:    orderID,
		CourierID:  courierID,
		AssignedAt: time.Now().UTC(),
	}
	return nil
}

func (d *Dispatch) publishAssigned(result entities.DispatchResult) {
	courierID := result.CourierID
	d.events.Publish(watch.Event{
		Type:      watch.EventOrderStatus,
		OrderID:   result.OrderID,
		Status:    entities.OrderOutForDelivery,
		CourierID: &courierID,
		At:        result.AssignedAt,
	})
}
