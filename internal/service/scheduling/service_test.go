package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

var jst = time.FixedZone("JST", 9*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(9, 17, nopLogger{})
}

func at(hour, min int) time.Time {
	return time.Date(2025, 2, 7, hour, min, 0, 0, jst)
}

func iv(startHour, startMin, endHour, endMin int) domain.TimeInterval {
	return domain.TimeInterval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestFindFreeSlots_SingleBusyBlock(t *testing.T) {
	// busy=[13:00-14:00], window=13:00-15:00, min=1h -> [14:00-15:00]
	svc := newTestService()

	slots := svc.FindFreeSlots(
		[]domain.TimeInterval{iv(13, 0, 14, 0)},
		iv(13, 0, 15, 0),
		time.Hour,
	)

	require.Len(t, slots, 1)
	assert.Equal(t, iv(14, 0, 15, 0), slots[0])
}

func TestFindFreeSlots_EmptyCalendar(t *testing.T) {
	// Пустой календарь -> все окно одним слотом
	svc := newTestService()

	slots := svc.FindFreeSlots(nil, iv(9, 0, 17, 0), time.Hour)

	require.Len(t, slots, 1)
	assert.Equal(t, iv(9, 0, 17, 0), slots[0])
}

func TestFindFreeSlots_TwoBusyBlocks(t *testing.T) {
	// busy=[10-11, 14-15], window=9-17 -> [9-10, 11-14, 15-17], longest 11-14
	svc := newTestService()
	busy := []domain.TimeInterval{iv(10, 0, 11, 0), iv(14, 0, 15, 0)}

	slots := svc.FindFreeSlots(busy, iv(9, 0, 17, 0), time.Hour)

	require.Len(t, slots, 3)
	assert.Equal(t, iv(9, 0, 10, 0), slots[0])
	assert.Equal(t, iv(11, 0, 14, 0), slots[1])
	assert.Equal(t, iv(15, 0, 17, 0), slots[2])

	longest, ok := svc.FindLongestFreeSlot(busy, iv(9, 0, 17, 0), time.Hour)
	require.True(t, ok)
	assert.Equal(t, iv(11, 0, 14, 0), longest)
	assert.Equal(t, 3*time.Hour, longest.Duration())
}

func TestFindFreeSlots_WindowFullyBusy(t *testing.T) {
	svc := newTestService()

	slots := svc.FindFreeSlots(
		[]domain.TimeInterval{iv(13, 0, 15, 0)},
		iv(13, 0, 15, 0),
		time.Hour,
	)

	assert.Empty(t, slots)
}

func TestFindFreeSlots_MinDurationFiltersShortGaps(t *testing.T) {
	svc := newTestService()
	busy := []domain.TimeInterval{iv(10, 0, 10, 30), iv(11, 0, 12, 0)}

	// Промежуток 10:30-11:00 (30 минут) отсекается часовым минимумом
	slots := svc.FindFreeSlots(busy, iv(10, 0, 13, 0), time.Hour)
	require.Len(t, slots, 1)
	assert.Equal(t, iv(12, 0, 13, 0), slots[0])

	// ...но проходит 30-минутным (режим просмотра)
	slots = svc.FindFreeSlots(busy, iv(10, 0, 13, 0), 30*time.Minute)
	require.Len(t, slots, 2)
	assert.Equal(t, iv(10, 30, 11, 0), slots[0])
}

func TestFindFreeSlots_ClipsToBusinessHours(t *testing.T) {
	svc := newTestService()

	// Окно на весь день: края должны прижаться к 9 и 17
	slots := svc.FindFreeSlots(
		[]domain.TimeInterval{iv(12, 0, 13, 0)},
		domain.TimeInterval{Start: at(0, 0), End: at(23, 59)},
		time.Hour,
	)

	require.Len(t, slots, 2)
	assert.Equal(t, iv(9, 0, 12, 0), slots[0])
	assert.Equal(t, iv(13, 0, 17, 0), slots[1])
}

func TestFindFreeSlots_WindowOutsideBusinessHours(t *testing.T) {
	svc := newTestService()

	slots := svc.FindFreeSlots(nil, iv(18, 0, 22, 0), time.Hour)
	assert.Empty(t, slots)
}

func TestFindFreeSlots_OverlappingBusyMerged(t *testing.T) {
	// Блоки из разных календарей пересекаются - должны склеиться
	svc := newTestService()
	busy := []domain.TimeInterval{iv(10, 0, 12, 0), iv(11, 0, 13, 0), iv(13, 0, 14, 0)}

	slots := svc.FindFreeSlots(busy, iv(9, 0, 17, 0), time.Hour)

	require.Len(t, slots, 2)
	assert.Equal(t, iv(9, 0, 10, 0), slots[0])
	assert.Equal(t, iv(14, 0, 17, 0), slots[1])
}

// Свойства: слоты не пересекаются с занятостью, держат минимальную
// длительность и лежат в рабочих часах
func TestFindFreeSlots_Properties(t *testing.T) {
	svc := newTestService()
	busy := []domain.TimeInterval{
		iv(9, 30, 10, 15),
		iv(10, 0, 11, 45),
		iv(13, 0, 13, 30),
		iv(16, 0, 16, 30),
	}
	window := domain.TimeInterval{Start: at(8, 0), End: at(19, 0)}
	minDuration := 30 * time.Minute

	slots := svc.FindFreeSlots(busy, window, minDuration)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		for _, b := range busy {
			assert.False(t, slot.Overlaps(b), "slot %v overlaps busy %v", slot, b)
		}
		assert.GreaterOrEqual(t, slot.Duration(), minDuration)
		assert.False(t, slot.Start.Before(at(9, 0)))
		assert.False(t, slot.End.After(at(17, 0)))
	}
}

func TestFindDailyFreeSlots(t *testing.T) {
	svc := newTestService()
	busy := []domain.TimeInterval{
		iv(9, 0, 17, 0), // первый день занят полностью
	}

	slots := svc.FindDailyFreeSlots(busy, at(9, 0), 2, time.Hour)

	require.Len(t, slots, 1)
	next := at(9, 0).AddDate(0, 0, 1)
	assert.Equal(t, next, slots[0].Start)
	assert.Equal(t, next.Add(8*time.Hour), slots[0].End)
}

func TestSelectSlot(t *testing.T) {
	svc := newTestService()
	slots := []domain.FreeSlot{
		iv(9, 0, 10, 0),
		iv(11, 0, 14, 0),
		iv(15, 0, 17, 0),
	}

	t.Run("earliest", func(t *testing.T) {
		slot, err := svc.SelectSlot(slots, domain.StrategyEarliest, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, slots[0], slot)
	})

	t.Run("longest", func(t *testing.T) {
		slot, err := svc.SelectSlot(slots, domain.StrategyLongest, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, slots[1], slot)
	})

	t.Run("longest tie prefers earlier", func(t *testing.T) {
		tied := []domain.FreeSlot{iv(9, 0, 10, 0), iv(15, 0, 16, 0)}
		slot, err := svc.SelectSlot(tied, domain.StrategyLongest, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, tied[0], slot)
	})

	t.Run("nearest to requested start", func(t *testing.T) {
		slot, err := svc.SelectSlot(slots, domain.StrategyNearest, at(14, 30))
		require.NoError(t, err)
		assert.Equal(t, slots[2], slot)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := svc.SelectSlot(slots, domain.SelectionStrategy("weird"), time.Time{})
		assert.ErrorIs(t, err, ErrInvalidStrategy)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := svc.SelectSlot(nil, domain.StrategyEarliest, time.Time{})
		assert.ErrorIs(t, err, ErrNoSlots)
	})
}

func TestFormatSlotList(t *testing.T) {
	svc := newTestService()

	out := svc.FormatSlotList([]domain.FreeSlot{
		iv(10, 0, 11, 0),
		iv(14, 0, 15, 0),
	})

	assert.Equal(t, "1. 02月07日(金) 10:00〜11:00\n2. 02月07日(金) 14:00〜15:00", out)
}

func TestFormatSlot_CrossesMidnight(t *testing.T) {
	slot := domain.FreeSlot{
		Start: at(23, 0),
		End:   at(23, 0).Add(2 * time.Hour),
	}
	assert.Equal(t, "02月07日(金) 23:00〜02月08日(土) 01:00", FormatSlot(slot))
}
