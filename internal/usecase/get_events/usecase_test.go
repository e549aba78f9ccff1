package get_events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/integrations/googlecalendar"
)

var jst = time.FixedZone("JST", 9*60*60)

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, jst)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCalendar struct {
	events     []googlecalendar.Event
	listErr    error
	lastWindow domain.TimeInterval
}

func (f *fakeCalendar) ListEvents(_ context.Context, _ string, window domain.TimeInterval) ([]googlecalendar.Event, error) {
	f.lastWindow = window
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func newTestUseCase(cal *fakeCalendar) *UseCase {
	uc := NewUseCase(cal, jst, 30, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_ReturnsEvents(t *testing.T) {
	cal := &fakeCalendar{events: []googlecalendar.Event{
		{
			ID:         "evt-1",
			CalendarID: "primary",
			Title:      "会議",
			Start:      time.Date(2025, 1, 16, 13, 0, 0, 0, jst),
			End:        time.Date(2025, 1, 16, 14, 0, 0, 0, jst),
		},
	}}
	uc := newTestUseCase(cal)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	require.NoError(t, err)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, "会議", resp.Events[0].Title)
	assert.True(t, resp.From.Equal(testNow))
	assert.True(t, resp.To.Equal(testNow.AddDate(0, 0, 30)))
	assert.True(t, cal.lastWindow.End.Equal(testNow.AddDate(0, 0, 30)))
}

func TestExecute_CustomHorizon(t *testing.T) {
	cal := &fakeCalendar{}
	uc := newTestUseCase(cal)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Days: 7})
	require.NoError(t, err)
	assert.True(t, resp.To.Equal(testNow.AddDate(0, 0, 7)))
}

func TestExecute_CalendarUnavailable(t *testing.T) {
	cal := &fakeCalendar{listErr: errors.New("unauthorized")}
	uc := newTestUseCase(cal)

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeCalendar{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{UserID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{UserID: "user-1", Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
