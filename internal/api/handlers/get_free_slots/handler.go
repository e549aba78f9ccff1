package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	findSlots "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/find_slots"
)

const (
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMinDuration    = "некорректная минимальная длительность"
	msgInvalidRequestedStart = "некорректный формат requested_start, ожидается RFC3339"
	msgInvalidStrategy       = "неизвестная стратегия выбора слота"
	msgCalendarUnavailable   = "календарь временно недоступен"
)

type Handler struct {
	useCase FindSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-slots?date=YYYY-MM-DD&min_duration=60&strategy=longest&requested_start=RFC3339
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /free-slots - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &findSlots.Request{
		UserID:   userID,
		Date:     date,
		Strategy: query.Get("strategy"),
	}

	if raw := query.Get("min_duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			h.logger.Warn("GET /free-slots - Invalid min_duration %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMinDuration)
			return
		}
		req.MinDurationMinutes = minutes
	}

	if raw := query.Get("requested_start"); raw != "" {
		requestedStart, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /free-slots - Invalid requested_start %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidRequestedStart)
			return
		}
		req.RequestedStart = requestedStart
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrInvalidInput):
			h.logger.Warn("GET /free-slots - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStrategy)

		case errors.Is(err, findSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /free-slots - Calendar unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /free-slots - Failed to find slots: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /free-slots - Found %d slots: user_id=%s, date=%s", len(result.Slots), userID, req.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
