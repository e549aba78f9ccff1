package get_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_bookings: invalid input data")

	// ErrInternal возвращается при сбое чтения журнала
	ErrInternal = errors.New("get_bookings: internal error")
)
