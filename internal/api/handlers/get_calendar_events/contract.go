package get_calendar_events

import (
	"context"

	getEvents "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_events"
)

type GetEventsUseCase interface {
	Execute(ctx context.Context, req *getEvents.Request) (*getEvents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
