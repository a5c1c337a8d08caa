package order

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/watch"
	"dispatch/internal/repository"
)

// Lifecycle управляет жизненным циклом заказа: создание, отмена,
// доставка, отзыв. Переходы статусов выполняются условными
// обновлениями, поэтому гонка двух вызовов решается на уровне БД.
type Lifecycle struct {
	repository    Repository
	registry      CourierRegistry
	events        Events
	statusFactory HandlerFactory
	estimates     EstimateCache
	txManager     TxManager
}

func New(
	repository Repository,
	registry CourierRegistry,
	events Events,
	statusFactory HandlerFactory,
	estimates EstimateCache,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		repository:    repository,
		registry:      registry,
		events:        events,
		statusFactory: statusFactory,
		estimates:     estimates,
		txManager:     txManager,
	}
}

// CreateOrder регистрирует новый заказ в статусе preparing.
// Идентификатор генерируется здесь, а не в БД: он нужен клиенту
// сразу для подписки на события.
func (l *Lifecycle) CreateOrder(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	if err := validateCreate(orderModifyEntity); err != nil {
		return nil, err
	}

	orderModifyEntity.ID = pointer.To(uuid.NewString())
	orderModifyEntity.Status = pointer.To(entities.OrderPreparing)
	orderModifyEntity.FeedbackGiven = pointer.To(false)

	created, err := l.repository.Create(ctx, orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	l.events.Publish(watch.Event{
		Type:    watch.EventOrderStatus,
		OrderID: created.ID,
		Status:  created.Status,
		At:      created.CreatedAt,
	})

	return created, nil
}

// GetOrder возвращает заказ вместе с историей маршрута.
func (l *Lifecycle) GetOrder(ctx context.Context, orderID string) (*entities.OrderDetails, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	details := entities.OrderDetails{}

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := l.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		history, err := l.repository.GetRouteHistory(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get route history: %w", err)
		}

		details.Order = *orderEntity
		details.RouteHistory = history

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// Cancel отменяет заказ. Разрешено только из preparing: после выхода
// курьера отмена запрещена и возвращает ErrInvalidTransition.
func (l *Lifecycle) Cancel(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	if err := l.repository.CancelPreparing(ctx, orderID); err != nil {
		return err
	}

	l.estimates.Forget(orderID)

	l.events.Publish(watch.Event{
		Type:    watch.EventOrderStatus,
		OrderID: orderID,
		Status:  entities.OrderCancelled,
		At:      time.Now().UTC(),
	})

	return nil
}

// MarkDelivered завершает доставку. Вызов принимается только от
// назначенного курьера; заказ помечается delivered и курьер
// освобождается в одной транзакции.
func (l *Lifecycle) MarkDelivered(ctx context.Context, orderID string, courierID int64) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		if err := l.repository.MarkDelivered(ctx, orderID, courierID); err != nil {
			return err
		}

		if err := l.registry.Release(ctx, courierID); err != nil {
			return fmt.Errorf("release courier: %w", err)
		}

		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return fmt.Errorf("%w: order %s", ErrConcurrentUpdate, orderID)
		}
		return err
	}

	// терминальный статус, оценка маршрута больше не понадобится
	l.estimates.Forget(orderID)

	l.events.Publish(watch.Event{
		Type:      watch.EventOrderStatus,
		OrderID:   orderID,
		Status:    entities.OrderDelivered,
		CourierID: &courierID,
		At:        time.Now().UTC(),
	})

	return nil
}

// SubmitFeedback фиксирует факт отзыва по доставленному заказу.
// Сам текст отзыва хранит внешняя витрина; здесь взводится только
// флаг, ровно один раз - повторная отправка отклоняется.
func (l *Lifecycle) SubmitFeedback(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	return l.repository.SetFeedbackGiven(ctx, orderID)
}
