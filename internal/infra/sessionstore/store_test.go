package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

var jst = time.FixedZone("JST", 9*60*60)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Hour), mr
}

func TestStore_PendingRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	pending := domain.PendingBooking{
		Start:  time.Date(2025, 2, 7, 13, 0, 0, 0, jst),
		End:    time.Date(2025, 2, 7, 15, 0, 0, 0, jst),
		Title:  "会議",
		Intent: domain.IntentEventCreation,
	}

	require.NoError(t, store.SavePending(ctx, "user-1", pending))

	got, err := store.GetPending(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(pending.Start))
	assert.True(t, got.End.Equal(pending.End))
	assert.Equal(t, "会議", got.Title)
	assert.Equal(t, domain.IntentEventCreation, got.Intent)
}

func TestStore_PendingNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetPending(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPendingNotFound)
}

func TestStore_PendingExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	pending := domain.PendingBooking{
		Start: time.Date(2025, 2, 7, 13, 0, 0, 0, jst),
		End:   time.Date(2025, 2, 7, 15, 0, 0, 0, jst),
	}
	require.NoError(t, store.SavePending(ctx, "user-1", pending))

	mr.FastForward(2 * time.Hour)

	_, err := store.GetPending(ctx, "user-1")
	assert.ErrorIs(t, err, ErrPendingNotFound)
}

func TestStore_DeletePending(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	pending := domain.PendingBooking{
		Start: time.Date(2025, 2, 7, 13, 0, 0, 0, jst),
		End:   time.Date(2025, 2, 7, 15, 0, 0, 0, jst),
	}
	require.NoError(t, store.SavePending(ctx, "user-1", pending))
	require.NoError(t, store.DeletePending(ctx, "user-1"))

	_, err := store.GetPending(ctx, "user-1")
	assert.ErrorIs(t, err, ErrPendingNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeletePending(ctx, "user-1"))
}

func TestStore_SelectionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	selection := domain.PendingSelection{Slots: []domain.FreeSlot{
		{Start: time.Date(2025, 2, 7, 10, 0, 0, 0, jst), End: time.Date(2025, 2, 7, 11, 0, 0, 0, jst)},
		{Start: time.Date(2025, 2, 7, 14, 0, 0, 0, jst), End: time.Date(2025, 2, 7, 15, 0, 0, 0, jst)},
	}}

	require.NoError(t, store.SaveSelection(ctx, "user-1", selection))

	got, err := store.GetSelection(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Slots, 2)
	assert.True(t, got.Slots[0].Start.Equal(selection.Slots[0].Start))
	assert.True(t, got.Slots[1].End.Equal(selection.Slots[1].End))

	slot, ok := got.ResolveIndex(2)
	require.True(t, ok)
	assert.True(t, slot.Start.Equal(selection.Slots[1].Start))
}

func TestStore_SelectionNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetSelection(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestStore_SelectionWireFormat(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	selection := domain.PendingSelection{Slots: []domain.FreeSlot{
		{Start: time.Date(2025, 2, 7, 10, 0, 0, 0, jst), End: time.Date(2025, 2, 7, 11, 0, 0, 0, jst)},
	}}
	require.NoError(t, store.SaveSelection(ctx, "user-1", selection))

	// Список хранится как массив пар [start, end] в RFC3339
	raw, err := mr.Get("available_slots:user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `[["2025-02-07T10:00:00+09:00","2025-02-07T11:00:00+09:00"]]`, raw)
}
