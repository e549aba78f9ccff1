package domain

import "time"

// Intent классификация сообщения пользователя
type Intent string

const (
	// IntentEventCreation запрос на создание события
	IntentEventCreation Intent = "event_creation"

	// IntentAvailabilityCheck запрос на просмотр свободного времени
	IntentAvailabilityCheck Intent = "availability_check"

	// IntentUnknown намерение не распознано
	IntentUnknown Intent = "unknown"
)

// PendingBooking предложенное, но не подтвержденное событие
// Живет в эфемерном хранилище до явного "да"/"нет", истечения TTL
// или замещения новым запросом. Никогда не мутируется - только замена целиком
type PendingBooking struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Title  string    `json:"title"`
	Intent Intent    `json:"intent"`
}

// Interval возвращает интервал предложенного события
func (p *PendingBooking) Interval() TimeInterval {
	return TimeInterval{Start: p.Start, End: p.End}
}

// PendingSelection показанный пользователю нумерованный список слотов,
// ожидающий выбора по номеру ("2番で...")
// Порядок слотов фиксирован на момент показа: выбор i всегда разрешается
// в i-й элемент показанного списка, даже если календарь уже изменился
type PendingSelection struct {
	Slots []FreeSlot
}

// ResolveIndex разрешает 1-базный номер слота в слот списка
func (p *PendingSelection) ResolveIndex(n int) (FreeSlot, bool) {
	if n < 1 || n > len(p.Slots) {
		return FreeSlot{}, false
	}
	return p.Slots[n-1], true
}
