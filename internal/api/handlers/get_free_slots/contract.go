package get_free_slots

import (
	"context"

	findSlots "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/find_slots"
)

type FindSlotsUseCase interface {
	Execute(ctx context.Context, req *findSlots.Request) (*findSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
