package get_available_slots

import (
	"context"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория графика работы
type WorkingHoursRepository interface {
	ListBySalon(ctx context.Context, salonID int64) ([]domain.WorkingHours, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	ListByProfessional(ctx context.Context, salonID, professionalID int64) ([]domain.TimeBlock, error)
}

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	ListConfirmedByProfessionalOnDate(ctx context.Context, salonID, professionalID int64, date time.Time) ([]*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
