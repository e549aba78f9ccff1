package find_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// CalendarProvider интерфейс провайдера календаря
type CalendarProvider interface {
	ListBusy(ctx context.Context, userID string, window domain.TimeInterval) ([]domain.TimeInterval, error)
}

// SlotService интерфейс поиска и выбора свободных слотов
type SlotService interface {
	FindFreeSlots(busy []domain.TimeInterval, window domain.TimeInterval, minDuration time.Duration) []domain.FreeSlot
	SelectSlot(slots []domain.FreeSlot, strategy domain.SelectionStrategy, requestedStart time.Time) (domain.FreeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
