package add_appointment_service

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	AddService(ctx context.Context, salonID, appointmentID int64, req *models.AddServiceRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
