package get_free_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	findSlots "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/find_slots"
)

var jst = time.FixedZone("JST", 9*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *findSlots.Response
	err     error
	lastReq *findSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *findSlots.Request) (*findSlots.Response, error) {
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
	uc := &fakeUseCase{resp: &findSlots.Response{
		Date: time.Date(2025, 2, 7, 0, 0, 0, 0, jst),
		Slots: []findSlots.Slot{{
			Start: time.Date(2025, 2, 7, 9, 0, 0, 0, jst),
			End:   time.Date(2025, 2, 7, 10, 0, 0, 0, jst),
		}},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=2025-02-07")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2025-02-07"`)
	assert.Contains(t, rec.Body.String(), "2025-02-07T09:00:00+09:00")
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 7, uc.lastReq.Date.Day())
}

func TestHandle_QueryParams(t *testing.T) {
	uc := &fakeUseCase{resp: &findSlots.Response{Date: time.Date(2025, 2, 7, 0, 0, 0, 0, jst)}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=2025-02-07&min_duration=60&strategy=nearest&requested_start=2025-02-07T14:00:00%2B09:00")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 60, uc.lastReq.MinDurationMinutes)
	assert.Equal(t, "nearest", uc.lastReq.Strategy)
	assert.Equal(t, 14, uc.lastReq.RequestedStart.In(jst).Hour())
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=07-02-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, "/api/v1/free-slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidMinDuration(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=2025-02-07&min_duration=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_CalendarUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: findSlots.ErrCalendarUnavailable}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=2025-02-07")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandle_InvalidStrategy(t *testing.T) {
	uc := &fakeUseCase{err: findSlots.ErrInvalidInput}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/free-slots?date=2025-02-07&strategy=weird")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
