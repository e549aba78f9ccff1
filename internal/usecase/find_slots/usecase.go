package find_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// UseCase use case получения свободных слотов на дату
type UseCase struct {
	calendar           CalendarProvider
	slots              SlotService
	loc                *time.Location
	minDisplayDuration time.Duration
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarProvider, slots SlotService, loc *time.Location, minDisplayDuration time.Duration, logger Logger) *UseCase {
	return &UseCase{
		calendar:           calendar,
		slots:              slots,
		loc:                loc,
		minDisplayDuration: minDisplayDuration,
		logger:             logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindSlots: user=%s date=%s strategy=%q", req.UserID, req.Date.Format(domain.DateFormat), req.Strategy)

	strategy, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		return nil, err
	}

	minDuration := uc.minDisplayDuration
	if req.MinDurationMinutes > 0 {
		minDuration = time.Duration(req.MinDurationMinutes) * time.Minute
	}

	y, m, d := req.Date.In(uc.loc).Date()
	window := domain.TimeInterval{
		Start: time.Date(y, m, d, 0, 0, 0, 0, uc.loc),
		End:   time.Date(y, m, d+1, 0, 0, 0, 0, uc.loc),
	}

	busy, err := uc.calendar.ListBusy(ctx, req.UserID, window)
	if err != nil {
		uc.logger.Error("FindSlots: calendar read failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	free := uc.slots.FindFreeSlots(busy, window, minDuration)

	resp := &Response{
		Date:  window.Start,
		Slots: make([]Slot, len(free)),
	}
	for i, slot := range free {
		resp.Slots[i] = Slot{Start: slot.Start, End: slot.End}
	}

	if strategy != "" && len(free) > 0 {
		requestedStart := req.RequestedStart
		if requestedStart.IsZero() {
			requestedStart = window.Start
		}
		best, err := uc.slots.SelectSlot(free, strategy, requestedStart)
		if err != nil {
			uc.logger.Error("FindSlots: slot selection failed: %v", err)
			return nil, fmt.Errorf("%w: failed to select slot: %v", ErrInternal, err)
		}
		resp.Best = &Slot{Start: best.Start, End: best.End}
	}

	uc.logger.Info("FindSlots: found %d slots for user=%s date=%s", len(resp.Slots), req.UserID, req.Date.Format(domain.DateFormat))
	return resp, nil
}
