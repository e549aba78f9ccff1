package get_bookings

import (
	"context"
	"errors"
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

type fakeRepo struct {
	entries   []*domain.BookingLogEntry
	err       error
	lastUser  string
	lastLimit uint64
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID string, limit uint64) ([]*domain.BookingLogEntry, error) {
	f.lastUser = userID
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestExecute_Success(t *testing.T) {
	start := time.Date(2025, 2, 7, 13, 0, 0, 0, jst)
	repo := &fakeRepo{entries: []*domain.BookingLogEntry{{
		ID:         1,
		UserID:     "user-1",
		CalendarID: "primary",
		EventID:    "evt-1",
		Title:      "会議",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Source:     domain.BookingSourceChat,
		CreatedAt:  start.Add(-time.Hour),
	}}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, "会議", resp.Bookings[0].Title)
	assert.Equal(t, domain.BookingSourceChat, resp.Bookings[0].Source)
	assert.True(t, resp.Bookings[0].Start.Equal(start))

	assert.Equal(t, "user-1", repo.lastUser)
	assert.Equal(t, uint64(defaultLimit), repo.lastLimit)
}

func TestExecute_ExplicitLimit(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, uint64(5), repo.lastLimit)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{UserID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{UserID: "user-1", Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
