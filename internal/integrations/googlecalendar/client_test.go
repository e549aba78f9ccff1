package googlecalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

var jst = time.FixedZone("JST", 9*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient() *Client {
	return &Client{loc: jst, log: nopLogger{}}
}

func TestConvertEvent_Timed(t *testing.T) {
	c := newTestClient()

	ev, ok := c.convertEvent("primary", &calendar.Event{
		Id:      "evt-1",
		Summary: "会議",
		Start:   &calendar.EventDateTime{DateTime: "2025-02-07T01:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2025-02-07T02:00:00Z"},
	})

	require.True(t, ok)
	assert.Equal(t, "evt-1", ev.ID)
	assert.Equal(t, "primary", ev.CalendarID)
	assert.Equal(t, "会議", ev.Title)
	assert.False(t, ev.AllDay)
	// UTC переводится в таймзону клиента
	assert.True(t, ev.Start.Equal(time.Date(2025, 2, 7, 10, 0, 0, 0, jst)))
	assert.Equal(t, jst.String(), ev.Start.Location().String())
	assert.True(t, ev.End.Equal(time.Date(2025, 2, 7, 11, 0, 0, 0, jst)))
}

func TestConvertEvent_AllDay(t *testing.T) {
	c := newTestClient()

	// End.Date эксклюзивный: однодневное событие занимает полные сутки
	ev, ok := c.convertEvent("primary", &calendar.Event{
		Id:    "evt-2",
		Start: &calendar.EventDateTime{Date: "2025-02-07"},
		End:   &calendar.EventDateTime{Date: "2025-02-08"},
	})

	require.True(t, ok)
	assert.True(t, ev.AllDay)
	assert.True(t, ev.Start.Equal(time.Date(2025, 2, 7, 0, 0, 0, 0, jst)))
	assert.True(t, ev.End.Equal(time.Date(2025, 2, 8, 0, 0, 0, 0, jst)))
}

func TestConvertEvent_Skipped(t *testing.T) {
	c := newTestClient()

	cases := map[string]*calendar.Event{
		"no start": {
			Id:  "evt-3",
			End: &calendar.EventDateTime{DateTime: "2025-02-07T02:00:00Z"},
		},
		"no end": {
			Id:    "evt-4",
			Start: &calendar.EventDateTime{DateTime: "2025-02-07T01:00:00Z"},
		},
		"bad datetime": {
			Id:    "evt-5",
			Start: &calendar.EventDateTime{DateTime: "not-a-timestamp"},
			End:   &calendar.EventDateTime{DateTime: "2025-02-07T02:00:00Z"},
		},
		"bad all-day date": {
			Id:    "evt-6",
			Start: &calendar.EventDateTime{Date: "07.02.2025"},
			End:   &calendar.EventDateTime{Date: "2025-02-08"},
		},
	}

	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := c.convertEvent("primary", item)
			assert.False(t, ok)
		})
	}
}

func TestSortEventsByStart(t *testing.T) {
	events := []Event{
		{ID: "b", Start: time.Date(2025, 2, 7, 14, 0, 0, 0, jst)},
		{ID: "a", Start: time.Date(2025, 2, 7, 9, 0, 0, 0, jst)},
		{ID: "c", Start: time.Date(2025, 2, 8, 9, 0, 0, 0, jst)},
	}

	sortEventsByStart(events)

	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}
