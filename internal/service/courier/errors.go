package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrCourierNotFound    = errors.New("courier not found")
	ErrConflict           = errors.New("resource already exists")
	ErrCourierAlreadyBusy = errors.New("courier already reserved")
	ErrCourierNotBusy     = errors.New("courier is not reserved")
)
