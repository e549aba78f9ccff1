package post_chat_message

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handleMessage "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/handle_message"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *handleMessage.Response
	err     error
	lastReq *handleMessage.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *handleMessage.Request) (*handleMessage.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/schedule", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &handleMessage.Response{Reply: "以下の時間帯が空いています："}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"message":"2月7日の空き時間を教えて"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "以下の時間帯が空いています")
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "2月7日の空き時間を教えて", uc.lastReq.Message)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: handleMessage.ErrInvalidInput}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"message":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("redis down")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"message":"はい"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redis")
}
