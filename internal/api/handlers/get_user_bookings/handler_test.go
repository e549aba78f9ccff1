package get_user_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBookings "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_bookings"
)

var jst = time.FixedZone("JST", 9*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *getBookings.Response
	err     error
	lastReq *getBookings.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getBookings.Request) (*getBookings.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2025, 2, 7, 13, 0, 0, 0, jst)
	uc := &fakeUseCase{resp: &getBookings.Response{Bookings: []getBookings.Booking{{
		ID:         1,
		CalendarID: "primary",
		EventID:    "evt-1",
		Title:      "会議",
		Start:      start,
		End:        start.Add(time.Hour),
		Source:     "chat",
		CreatedAt:  start,
	}}}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/bookings")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eventId":"evt-1"`)
	assert.Contains(t, rec.Body.String(), "2025-02-07T13:00:00+09:00")
	assert.Contains(t, rec.Body.String(), `"source":"chat"`)
}

func TestHandle_LimitParam(t *testing.T) {
	uc := &fakeUseCase{resp: &getBookings.Response{}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/bookings?limit=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 5, uc.lastReq.Limit)
}

func TestHandle_InvalidLimit(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "/api/v1/bookings?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, "/api/v1/bookings?limit=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/bookings")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
