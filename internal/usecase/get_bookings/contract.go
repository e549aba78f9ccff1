package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// BookingLogRepository читает журнал созданных событий
type BookingLogRepository interface {
	GetByUserID(ctx context.Context, userID string, limit uint64) ([]*domain.BookingLogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
