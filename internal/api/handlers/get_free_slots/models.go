package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	findSlots "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/find_slots"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/ptr"
)

// SlotResponse HTTP модель свободного слота
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
	Best  *SlotResponse  `json:"best,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *FreeSlotsResponse {
	out := &FreeSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, len(resp.Slots)),
	}
	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}
	if resp.Best != nil {
		out.Best = ptr.Ptr(SlotResponse{
			Start: resp.Best.Start.Format(time.RFC3339),
			End:   resp.Best.End.Format(time.RFC3339),
		})
	}
	return out
}
