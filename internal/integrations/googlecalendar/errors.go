package googlecalendar

import "errors"

var (
	// ErrNoCredentials возвращается, когда для пользователя нет OAuth-токена
	ErrNoCredentials = errors.New("googlecalendar: no credentials for user")

	// ErrReadCalendar возвращается при ошибке чтения событий календаря
	ErrReadCalendar = errors.New("googlecalendar: failed to read calendar")

	// ErrWriteCalendar возвращается при ошибке записи события в календарь
	ErrWriteCalendar = errors.New("googlecalendar: failed to write calendar")
)
