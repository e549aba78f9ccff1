package scheduling

import "errors"

var (
	// ErrInvalidStrategy возвращается при неизвестной стратегии выбора слота
	ErrInvalidStrategy = errors.New("scheduling: invalid selection strategy")

	// ErrNoSlots возвращается при выборе из пустого списка кандидатов
	ErrNoSlots = errors.New("scheduling: no candidate slots")
)
