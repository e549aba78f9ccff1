package get_calendar_events

import (
	"time"

	getEvents "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_events"
)

// EventResponse HTTP модель события календаря
type EventResponse struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendarId"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	AllDay     bool   `json:"allDay,omitempty"`
}

// EventsResponse HTTP response model
type EventsResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Events []EventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEvents.Response) *EventsResponse {
	out := &EventsResponse{
		From:   resp.From.Format(time.RFC3339),
		To:     resp.To.Format(time.RFC3339),
		Events: make([]EventResponse, len(resp.Events)),
	}
	for i, ev := range resp.Events {
		out.Events[i] = EventResponse{
			ID:         ev.ID,
			CalendarID: ev.CalendarID,
			Title:      ev.Title,
			Start:      ev.Start.Format(time.RFC3339),
			End:        ev.End.Format(time.RFC3339),
			AllDay:     ev.AllDay,
		}
	}
	return out
}
