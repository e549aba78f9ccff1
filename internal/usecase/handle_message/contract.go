package handle_message

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/nlp"
)

// CalendarProvider интерфейс провайдера календаря
// Чтение занятости никогда не мутирует календарь; запись происходит
// только при явном подтверждении
type CalendarProvider interface {
	ListBusy(ctx context.Context, userID string, window domain.TimeInterval) ([]domain.TimeInterval, error)
	CreateEvent(ctx context.Context, userID string, title string, interval domain.TimeInterval) (*googlecalendar.Event, error)
}

// SessionStore интерфейс эфемерного диалогового состояния
// "Ключ не найден" и "ключ истек" неразличимы для оркестратора
type SessionStore interface {
	SavePending(ctx context.Context, userID string, pending domain.PendingBooking) error
	GetPending(ctx context.Context, userID string) (*domain.PendingBooking, error)
	DeletePending(ctx context.Context, userID string) error
	SaveSelection(ctx context.Context, userID string, selection domain.PendingSelection) error
	GetSelection(ctx context.Context, userID string) (*domain.PendingSelection, error)
	DeleteSelection(ctx context.Context, userID string) error
}

// Extractor интерфейс разбора японских сообщений
type Extractor interface {
	Parse(text string, now time.Time) *nlp.Result
	ClassifyIntent(text string) domain.Intent
	ExtractTitle(text string) string
}

// SlotService интерфейс поиска и выбора свободных слотов
type SlotService interface {
	FindFreeSlots(busy []domain.TimeInterval, window domain.TimeInterval, minDuration time.Duration) []domain.FreeSlot
	SelectSlot(slots []domain.FreeSlot, strategy domain.SelectionStrategy, requestedStart time.Time) (domain.FreeSlot, error)
	FormatSlotList(slots []domain.FreeSlot) string
}

// BookingLogRepository интерфейс журнала созданных событий
// Журнал опционален: при выключенной БД оркестратор работает без него
type BookingLogRepository interface {
	Create(ctx context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error)
}

// Metrics интерфейс счетчиков оркестратора
type Metrics interface {
	IncBookingCreated()
	IncTurn(outcome string)
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
