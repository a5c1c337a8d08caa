package courier

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
)

// Registry отслеживает состояние курьеров: онлайн/занят и последняя
// известная позиция. Выдачей идентификаторов владеет внешний user store,
// реестр только гарантирует уникальность username при создании.
type Registry struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Registry {
	return &Registry{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Registry) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Username == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidUsername(*courierModify.Username) {
		return 0, ErrInvalidUsername
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Registry) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Registry) ListAvailable(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available couriers: %w", err)
	}

	return couriers, nil
}

// SetOnline - переключатель со стороны курьера. Уход в офлайн не
// снимает is_busy: назначение живет до завершения заказа.
func (s *Registry) SetOnline(ctx context.Context, id int64, online bool) (*entities.Courier, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courierModify := entities.CourierModify{
		ID:       &id,
		IsOnline: pointer.To(online),
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier online state: %w", err)
	}
	return courier, nil
}

// Reserve ставит is_busy через compare-and-set.
// Вызывается только из транзакции диспетчеризации.
func (s *Registry) Reserve(ctx context.Context, id int64) error {
	if !isValidCourierID(id) {
		return ErrInvalidCourierID
	}

	if err := s.repository.SetBusy(ctx, id, true); err != nil {
		return fmt.Errorf("reserve courier %d: %w", id, err)
	}
	return nil
}

// Release снимает is_busy. Вызывается только из перехода жизненного
// цикла, который освобождает курьера (Delivered или переназначение).
func (s *Registry) Release(ctx context.Context, id int64) error {
	if !isValidCourierID(id) {
		return ErrInvalidCourierID
	}

	if err := s.repository.SetBusy(ctx, id, false); err != nil {
		return fmt.Errorf("release courier %d: %w", id, err)
	}
	return nil
}

// UpdateLocation перезаписывает последнюю известную позицию.
// История по активному заказу пишется трекером отдельно.
func (s *Registry) UpdateLocation(ctx context.Context, id int64, point entities.GeoPoint, at time.Time) error {
	if !isValidCourierID(id) {
		return ErrInvalidCourierID
	}
	if !isValidLocation(point) {
		return ErrInvalidLocation
	}

	if err := s.repository.UpdateLocation(ctx, id, point, at); err != nil {
		return fmt.Errorf("update courier %d location: %w", id, err)
	}
	return nil
}
