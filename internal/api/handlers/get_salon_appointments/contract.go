package get_salon_appointments

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListBySalon(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
