package domain

import "time"

// BookingLogEntry запись журнала созданных через ассистента событий
// Журнал ведется только на запись из диалога; календарь остается
// единственным источником правды о расписании
type BookingLogEntry struct {
	ID         int64
	UserID     string
	CalendarID string
	EventID    string
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	Source     string
	CreatedAt  time.Time
}

// Источники записей журнала
const (
	BookingSourceChat = "chat"
	BookingSourceAPI  = "api"
)
