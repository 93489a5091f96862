package schedule

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория графика работы
type WorkingHoursRepository interface {
	ListBySalon(ctx context.Context, salonID int64) ([]domain.WorkingHours, error)
	Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	ListBySalon(ctx context.Context, salonID int64) ([]domain.TimeBlock, error)
	ListByProfessional(ctx context.Context, salonID, professionalID int64) ([]domain.TimeBlock, error)
	Delete(ctx context.Context, salonID, id int64) error
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
