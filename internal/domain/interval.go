package domain

import (
	"sort"
	"time"
)

// TimeInterval полуоткрытый временной интервал [Start, End)
// Инвариант: Start < End, обе границы в одной таймзоне (JST для бизнес-логики)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал; инвертированный интервал считается пустым
func NewTimeInterval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start, End: end}
}

// IsEmpty возвращает true, если интервал пустой или инвертированный
func (i TimeInterval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// Duration возвращает длительность интервала
func (i TimeInterval) Duration() time.Duration {
	if i.IsEmpty() {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Overlaps проверяет пересечение с другим интервалом
// Полуоткрытая семантика: соприкасающиеся границы НЕ считаются пересечением
// (бронирование 11:00-11:30 и слот 11:30-12:00 не конфликтуют)
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains проверяет, что момент времени лежит внутри интервала
func (i TimeInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// SameDay возвращает true, если обе границы интервала лежат в одном календарном дне
func (i TimeInterval) SameDay() bool {
	y1, m1, d1 := i.Start.Date()
	y2, m2, d2 := i.End.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ClipToBusinessHours обрезает интервал по рабочим часам календарного дня его начала
// Начало поднимается до startHour, конец опускается до endHour того же дня
// Если после обрезки интервал инвертирован, возвращается пустой интервал
func ClipToBusinessHours(i TimeInterval, startHour, endHour int) TimeInterval {
	if i.IsEmpty() {
		return TimeInterval{}
	}

	y, m, d := i.Start.Date()
	loc := i.Start.Location()
	dayStart := time.Date(y, m, d, startHour, 0, 0, 0, loc)
	dayEnd := time.Date(y, m, d, endHour, 0, 0, 0, loc)

	clipped := i
	if clipped.Start.Before(dayStart) {
		clipped.Start = dayStart
	}
	if clipped.End.After(dayEnd) {
		clipped.End = dayEnd
	}

	if clipped.IsEmpty() {
		return TimeInterval{}
	}
	return clipped
}

// SortByStart сортирует интервалы по возрастанию начала (in place)
func SortByStart(intervals []TimeInterval) {
	sort.Slice(intervals, func(a, b int) bool {
		return intervals[a].Start.Before(intervals[b].Start)
	})
}

// MergeSorted склеивает пересекающиеся и соприкасающиеся интервалы
// Вход должен быть отсортирован по Start; пустые интервалы отбрасываются
// Используется для нормализации занятых блоков из нескольких календарей
func MergeSorted(intervals []TimeInterval) []TimeInterval {
	merged := make([]TimeInterval, 0, len(intervals))

	for _, iv := range intervals {
		if iv.IsEmpty() {
			continue
		}
		if len(merged) == 0 {
			merged = append(merged, iv)
			continue
		}

		last := &merged[len(merged)-1]
		// Соприкосновение (iv.Start == last.End) тоже склеиваем:
		// для поиска свободных окон смежные занятые блоки - один блок
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}
