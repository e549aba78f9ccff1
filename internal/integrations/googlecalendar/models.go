package googlecalendar

import "time"

// Event событие календаря в таймзоне клиента
// AllDay выставляется для событий, заданных датой без времени
type Event struct {
	ID         string
	CalendarID string
	Title      string
	Start      time.Time
	End        time.Time
	AllDay     bool
}
