package get_events

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_events: invalid input data")

	// ErrCalendarUnavailable возвращается при сбое чтения календаря
	ErrCalendarUnavailable = errors.New("get_events: calendar unavailable")
)
