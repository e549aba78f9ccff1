package get_events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/integrations/googlecalendar"
)

// CalendarProvider интерфейс провайдера календаря
type CalendarProvider interface {
	ListEvents(ctx context.Context, userID string, window domain.TimeInterval) ([]googlecalendar.Event, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
