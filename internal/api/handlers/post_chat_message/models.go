package post_chat_message

import (
	handleMessage "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/handle_message"
)

// ChatMessageRequest HTTP request model
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessageResponse HTTP response model
type ChatMessageResponse struct {
	Reply string `json:"reply"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChatMessageRequest) ToUseCaseRequest(userID string) *handleMessage.Request {
	return &handleMessage.Request{
		UserID:  userID,
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *handleMessage.Response) *ChatMessageResponse {
	return &ChatMessageResponse{Reply: resp.Reply}
}
