package tracking

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidSample    = errors.New("invalid position sample")

	// ErrNoActiveOrder - у курьера нет заказа в доставке. Для Report
	// это не ошибка: позиция обновляется, история не пишется.
	ErrNoActiveOrder = errors.New("courier has no active order")
)
