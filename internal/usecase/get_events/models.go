package get_events

import "time"

// Request модель запроса событий календаря
type Request struct {
	UserID string
	Days   int // Горизонт в днях; 0 - значение из конфигурации
}

// Response модель ответа со списком событий
type Response struct {
	From   time.Time
	To     time.Time
	Events []Event
}

// Event модель события календаря
type Event struct {
	ID         string
	CalendarID string
	Title      string
	Start      time.Time
	End        time.Time
	AllDay     bool
}
