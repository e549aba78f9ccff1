package get_bookings

import (
	"context"
	"fmt"
)

const defaultLimit = 20

// UseCase use case истории бронирований
type UseCase struct {
	repo   BookingLogRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo BookingLogRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute возвращает последние записи журнала пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	entries, err := uc.repo.GetByUserID(ctx, req.UserID, uint64(limit))
	if err != nil {
		uc.logger.Error("GetBookings: failed to read booking log for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to read booking log: %v", ErrInternal, err)
	}

	resp := &Response{Bookings: make([]Booking, len(entries))}
	for i, entry := range entries {
		resp.Bookings[i] = Booking{
			ID:         entry.ID,
			CalendarID: entry.CalendarID,
			EventID:    entry.EventID,
			Title:      entry.Title,
			Start:      entry.StartTime,
			End:        entry.EndTime,
			Source:     entry.Source,
			CreatedAt:  entry.CreatedAt,
		}
	}

	uc.logger.Info("GetBookings: found %d entries for user=%s", len(resp.Bookings), req.UserID)
	return resp, nil
}
