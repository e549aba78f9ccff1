package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/middleware"
	getBookings "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_bookings"
)

const (
	msgInvalidLimit = "некорректное значение limit"
)

type Handler struct {
	useCase GetBookingsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?limit=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	req := &getBookings.Request{UserID: userID}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /bookings - Invalid limit %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Found %d bookings: user_id=%s", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
