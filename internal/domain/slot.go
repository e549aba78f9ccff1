package domain

// FreeSlot свободный интервал внутри запрошенного окна
// Гарантии: не пересекается ни с одним занятым интервалом запроса,
// длительность не меньше минимальной
type FreeSlot = TimeInterval

// SelectionStrategy стратегия выбора слота из списка кандидатов
type SelectionStrategy string

const (
	// StrategyEarliest выбирает самый ранний слот (по умолчанию для создания событий)
	StrategyEarliest SelectionStrategy = "earliest"

	// StrategyLongest выбирает самый длинный слот (запросы "найди самое большое окно")
	// При равной длительности выигрывает более ранний
	StrategyLongest SelectionStrategy = "longest"

	// StrategyNearest выбирает слот, начинающийся ближе всего к запрошенному началу
	StrategyNearest SelectionStrategy = "nearest"
)

// Valid проверяет, что стратегия известна
func (s SelectionStrategy) Valid() bool {
	switch s {
	case StrategyEarliest, StrategyLongest, StrategyNearest:
		return true
	}
	return false
}
