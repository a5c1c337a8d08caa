package dispatch

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")

	// ErrNoCourierAvailable - штатный исход, не сбой: вызывающий
	// ретраит позже или назначает курьера вручную.
	ErrNoCourierAvailable   = errors.New("no courier available")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
	ErrOrderNotPreparing    = errors.New("order is not in preparing state")

	// ErrConcurrentUpdate - проигранная serializable-транзакция:
	// состояние изменил конкурентный вызов. Повтор только после
	// перечитывания состояния, это не сбой хранилища.
	ErrConcurrentUpdate = errors.New("concurrent update conflict")
)
