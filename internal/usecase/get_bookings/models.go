package get_bookings

import "time"

// Request модель запроса истории бронирований
type Request struct {
	UserID string
	Limit  int // 0 - значение по умолчанию
}

// Booking запись журнала в ответе
type Booking struct {
	ID         int64
	CalendarID string
	EventID    string
	Title      string
	Start      time.Time
	End        time.Time
	Source     string
	CreatedAt  time.Time
}

// Response модель ответа со списком последних бронирований
type Response struct {
	Bookings []Booking
}
