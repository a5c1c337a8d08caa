package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidAddress        = errors.New("invalid delivery address")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order already exists")

	// ErrInvalidTransition - попытка перехода вне таблицы состояний.
	// Наружу отдается как есть, автоматических ретраев нет.
	ErrInvalidTransition    = errors.New("invalid order state transition")
	ErrCourierMismatch      = errors.New("order is assigned to another courier")
	ErrFeedbackAlreadyGiven = errors.New("feedback already given")

	// ErrConcurrentUpdate - проигранная serializable-транзакция:
	// состояние заказа изменил конкурентный вызов.
	ErrConcurrentUpdate = errors.New("concurrent update conflict")

	ErrUndefinedStatus = errors.New("undefined order status")
	ErrStatusMismatch  = errors.New("order status mismatch between event and store")
)
