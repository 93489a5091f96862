package complete_appointment

import (
	"context"

	completeAppointment "github.com/nkosach/SLN-SalonService/internal/usecase/complete_appointment"
)

type CompleteAppointmentUseCase interface {
	Execute(ctx context.Context, req *completeAppointment.Request) (*completeAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
