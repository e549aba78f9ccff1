package find_slots

import "time"

// Request модель запроса свободных слотов на дату
type Request struct {
	UserID             string
	Date               time.Time // Дата поиска (без времени)
	MinDurationMinutes int       // 0 - минимальная длительность просмотра из конфигурации
	Strategy           string    // earliest/longest/nearest; пусто - без выбора лучшего
	RequestedStart     time.Time // Используется только стратегией nearest
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time
	Slots []Slot
	Best  *Slot // Лучший слот по стратегии, если стратегия задана
}

// Slot модель свободного слота
type Slot struct {
	Start time.Time
	End   time.Time
}
