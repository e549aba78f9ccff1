package get_user_bookings

import (
	"context"

	getBookings "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_bookings"
)

type GetBookingsUseCase interface {
	Execute(ctx context.Context, req *getBookings.Request) (*getBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
