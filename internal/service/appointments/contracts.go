package appointments

import (
	"context"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateTotals(ctx context.Context, id int64, totalAmount float64, endAt time.Time) error
	Cancel(ctx context.Context, id int64, reason string) error
	ListServices(ctx context.Context, appointmentID int64) ([]domain.AppointmentService, error)
	AddService(ctx context.Context, item *domain.AppointmentService) (*domain.AppointmentService, error)
	RemoveService(ctx context.Context, appointmentID, lineID int64) error
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Service, error)
}

// LogRepository интерфейс журнала изменений визитов
type LogRepository interface {
	Create(ctx context.Context, log *domain.AppointmentLog) (*domain.AppointmentLog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
