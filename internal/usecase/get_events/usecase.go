package get_events

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// UseCase use case получения ближайших событий календаря
type UseCase struct {
	calendar      CalendarProvider
	loc           *time.Location
	lookaheadDays int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarProvider, loc *time.Location, lookaheadDays int, logger Logger) *UseCase {
	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultEventsLookaheadDays
	}
	return &UseCase{
		calendar:      calendar,
		loc:           loc,
		lookaheadDays: lookaheadDays,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения событий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.Days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		days = uc.lookaheadDays
	}

	now := uc.timeProvider.Now().In(uc.loc)
	window := domain.TimeInterval{Start: now, End: now.AddDate(0, 0, days)}

	uc.logger.Info("GetEvents: user=%s days=%d", req.UserID, days)

	events, err := uc.calendar.ListEvents(ctx, req.UserID, window)
	if err != nil {
		uc.logger.Error("GetEvents: calendar read failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	resp := &Response{
		From:   window.Start,
		To:     window.End,
		Events: make([]Event, len(events)),
	}
	for i, ev := range events {
		resp.Events[i] = Event{
			ID:         ev.ID,
			CalendarID: ev.CalendarID,
			Title:      ev.Title,
			Start:      ev.Start,
			End:        ev.End,
			AllDay:     ev.AllDay,
		}
	}

	uc.logger.Info("GetEvents: found %d events for user=%s", len(resp.Events), req.UserID)
	return resp, nil
}
