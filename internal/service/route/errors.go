package route

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidPoint   = errors.New("invalid coordinates")

	// ErrEstimationFailed - провайдер недоступен или ответил мусором.
	// Для потребителей это "ETA неизвестно", не фатальный сбой.
	ErrEstimationFailed = errors.New("route estimation failed")

	// ErrNoEstimate - по заказу еще не было ни одного успешного расчета.
	ErrNoEstimate = errors.New("no route estimate yet")
)
