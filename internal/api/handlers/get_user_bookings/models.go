package get_user_bookings

import (
	"time"

	getBookings "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_bookings"
)

// BookingResponse HTTP модель записи журнала бронирований
type BookingResponse struct {
	ID         int64  `json:"id"`
	CalendarID string `json:"calendarId"`
	EventID    string `json:"eventId"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Source     string `json:"source"`
	CreatedAt  string `json:"createdAt"`
}

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookings.Response) *BookingsResponse {
	out := &BookingsResponse{Bookings: make([]BookingResponse, len(resp.Bookings))}
	for i, b := range resp.Bookings {
		out.Bookings[i] = BookingResponse{
			ID:         b.ID,
			CalendarID: b.CalendarID,
			EventID:    b.EventID,
			Title:      b.Title,
			Start:      b.Start.Format(time.RFC3339),
			End:        b.End.Format(time.RFC3339),
			Source:     b.Source,
			CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
