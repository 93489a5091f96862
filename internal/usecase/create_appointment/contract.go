package create_appointment

import (
	"context"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	AddService(ctx context.Context, item *domain.AppointmentService) (*domain.AppointmentService, error)
	ListConfirmedByProfessionalOnDate(ctx context.Context, salonID, professionalID int64, date time.Time) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, salonID int64, ids []int64) ([]*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Professional, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Client, error)
}

// WorkingHoursRepository интерфейс репозитория графика работы
type WorkingHoursRepository interface {
	ListBySalon(ctx context.Context, salonID int64) ([]domain.WorkingHours, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	ListByProfessional(ctx context.Context, salonID, professionalID int64) ([]domain.TimeBlock, error)
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
