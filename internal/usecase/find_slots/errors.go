package find_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_slots: invalid input data")

	// ErrCalendarUnavailable возвращается при сбое чтения календаря
	ErrCalendarUnavailable = errors.New("find_slots: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_slots: internal error")
)
