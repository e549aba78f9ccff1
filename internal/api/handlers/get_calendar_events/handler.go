package get_calendar_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/middleware"
	getEvents "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_events"
)

const (
	msgInvalidDays         = "некорректное значение days"
	msgCalendarUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase GetEventsUseCase
	logger  Logger
}

func NewHandler(useCase GetEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events?days=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	req := &getEvents.Request{UserID: userID}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			h.logger.Warn("GET /calendar/events - Invalid days %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getEvents.ErrInvalidInput):
			h.logger.Warn("GET /calendar/events - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getEvents.ErrCalendarUnavailable):
			h.logger.Error("GET /calendar/events - Calendar unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /calendar/events - Failed to get events: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/events - Found %d events: user_id=%s", len(result.Events), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
