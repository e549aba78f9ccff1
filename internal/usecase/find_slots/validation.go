package find_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// validateRequest проверяет входные данные и разбирает стратегию выбора
func validateRequest(req *Request) (domain.SelectionStrategy, error) {
	if req == nil {
		return "", fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.UserID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.MinDurationMinutes < 0 {
		return "", fmt.Errorf("%w: min duration must be non-negative", ErrInvalidInput)
	}

	if req.Strategy == "" {
		return "", nil
	}

	strategy := domain.SelectionStrategy(req.Strategy)
	if !strategy.Valid() {
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, req.Strategy)
	}
	return strategy, nil
}
