package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// Service сервис поиска и выбора свободных слотов
// Вся интервальная арифметика детерминирована и не делает I/O:
// занятые интервалы - неизменяемый снимок календаря на момент запроса
type Service struct {
	businessStartHour int
	businessEndHour   int
	logger            Logger
}

// NewService создает новый экземпляр сервиса
func NewService(businessStartHour, businessEndHour int, logger Logger) *Service {
	return &Service{
		businessStartHour: businessStartHour,
		businessEndHour:   businessEndHour,
		logger:            logger,
	}
}

// FindFreeSlots возвращает все свободные интервалы окна с длительностью >= minDuration
//
// Алгоритм (один проход):
//  1. Окно обрезается по рабочим часам; пустое окно - ноль кандидатов
//  2. Занятые интервалы сортируются и склеиваются
//  3. Курсор идет от начала окна; промежуток до начала очередного занятого
//     блока становится кандидатом, курсор прыгает на конец блока
//  4. Хвост после последнего блока - тоже кандидат
//
// Обрезка по рабочим часам ДО обхода обязательна: иначе краевые слоты
// захватят нерабочее время
func (s *Service) FindFreeSlots(busy []domain.TimeInterval, window domain.TimeInterval, minDuration time.Duration) []domain.FreeSlot {
	window = domain.ClipToBusinessHours(window, s.businessStartHour, s.businessEndHour)
	if window.IsEmpty() {
		return nil
	}

	normalized := make([]domain.TimeInterval, len(busy))
	copy(normalized, busy)
	domain.SortByStart(normalized)
	normalized = domain.MergeSorted(normalized)

	slots := make([]domain.FreeSlot, 0, len(normalized)+1)
	current := window.Start

	for _, b := range normalized {
		// Блок закончился до курсора - уже пройден
		if !b.End.After(current) {
			continue
		}
		// Блок начинается за окном - дальше смотреть нечего
		if !b.Start.Before(window.End) {
			break
		}

		if current.Before(b.Start) {
			gap := domain.TimeInterval{Start: current, End: b.Start}
			if gap.Duration() >= minDuration {
				slots = append(slots, gap)
			}
		}
		if b.End.After(current) {
			current = b.End
		}
	}

	if current.Before(window.End) {
		tail := domain.TimeInterval{Start: current, End: window.End}
		if tail.Duration() >= minDuration {
			slots = append(slots, tail)
		}
	}

	return slots
}

// FindLongestFreeSlot возвращает самый длинный свободный интервал окна
// При равной длительности выигрывает более ранний
func (s *Service) FindLongestFreeSlot(busy []domain.TimeInterval, window domain.TimeInterval, minDuration time.Duration) (domain.FreeSlot, bool) {
	slots := s.FindFreeSlots(busy, window, minDuration)
	if len(slots) == 0 {
		return domain.FreeSlot{}, false
	}

	longest := slots[0]
	for _, slot := range slots[1:] {
		if slot.Duration() > longest.Duration() {
			longest = slot
		}
	}
	return longest, true
}

// FindDailyFreeSlots возвращает свободные слоты за несколько дней подряд
// Каждый день обсчитывается отдельно в рамках рабочих часов
func (s *Service) FindDailyFreeSlots(busy []domain.TimeInterval, from time.Time, days int, minDuration time.Duration) []domain.FreeSlot {
	slots := make([]domain.FreeSlot, 0)

	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		y, m, d := day.Date()
		dayWindow := domain.TimeInterval{
			Start: time.Date(y, m, d, 0, 0, 0, 0, day.Location()),
			End:   time.Date(y, m, d+1, 0, 0, 0, 0, day.Location()),
		}
		// Первый день не должен предлагать уже прошедшее время
		if i == 0 && from.After(dayWindow.Start) {
			dayWindow.Start = from
		}
		slots = append(slots, s.FindFreeSlots(busy, dayWindow, minDuration)...)
	}

	return slots
}

// SelectSlot выбирает слот из списка кандидатов по стратегии
// Чистая функция над уже отсортированным списком: без побочных эффектов и I/O
// requestedStart используется только стратегией nearest
func (s *Service) SelectSlot(slots []domain.FreeSlot, strategy domain.SelectionStrategy, requestedStart time.Time) (domain.FreeSlot, error) {
	if len(slots) == 0 {
		return domain.FreeSlot{}, ErrNoSlots
	}

	switch strategy {
	case domain.StrategyEarliest:
		return slots[0], nil

	case domain.StrategyLongest:
		longest := slots[0]
		for _, slot := range slots[1:] {
			if slot.Duration() > longest.Duration() {
				longest = slot
			}
		}
		return longest, nil

	case domain.StrategyNearest:
		nearest := slots[0]
		best := absDuration(slots[0].Start.Sub(requestedStart))
		for _, slot := range slots[1:] {
			if d := absDuration(slot.Start.Sub(requestedStart)); d < best {
				nearest = slot
				best = d
			}
		}
		return nearest, nil

	default:
		return domain.FreeSlot{}, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}
}

// FormatSlotList форматирует слоты нумерованным списком (с единицы)
// Слот внутри одного дня: "1. 13:00〜14:00"
// Слот через полночь показывает обе даты
func (s *Service) FormatSlotList(slots []domain.FreeSlot) string {
	lines := make([]string, len(slots))
	for i, slot := range slots {
		lines[i] = fmt.Sprintf("%d. %s", i+1, FormatSlot(slot))
	}
	return strings.Join(lines, "\n")
}

// FormatSlot форматирует один слот для показа пользователю
func FormatSlot(slot domain.FreeSlot) string {
	if slot.SameDay() {
		return fmt.Sprintf("%s %s〜%s",
			domain.FormatDateWeekdayJa(slot.Start),
			slot.Start.Format(domain.TimeFormat),
			slot.End.Format(domain.TimeFormat))
	}
	return fmt.Sprintf("%s %s〜%s %s",
		domain.FormatDateWeekdayJa(slot.Start),
		slot.Start.Format(domain.TimeFormat),
		domain.FormatDateWeekdayJa(slot.End),
		slot.End.Format(domain.TimeFormat))
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
