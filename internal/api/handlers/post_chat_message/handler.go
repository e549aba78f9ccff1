package post_chat_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/middleware"
	handleMessage "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/handle_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMessage     = "сообщение не может быть пустым"
)

type Handler struct {
	useCase HandleMessageUseCase
	logger  Logger
}

func NewHandler(useCase HandleMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, handleMessage.ErrInvalidInput):
			h.logger.Warn("POST /chat/schedule - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /chat/schedule - Failed to handle message: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat/schedule - Turn handled: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
