package complete_appointment

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Appointment, error)
	ListServices(ctx context.Context, appointmentID int64) ([]domain.AppointmentService, error)
	Complete(ctx context.Context, id int64, totalAmount float64) error
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Professional, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// CommissionRepository интерфейс репозитория комиссий
type CommissionRepository interface {
	Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error)
	GetRulesByProfessional(ctx context.Context, salonID, professionalID int64) (map[int64]domain.CommissionRule, error)
}

// CashflowRepository интерфейс репозитория денежных потоков
type CashflowRepository interface {
	Create(ctx context.Context, entry *domain.CashflowEntry) (*domain.CashflowEntry, error)
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Product, error)
	CreateMovement(ctx context.Context, movement *domain.ProductMovement) (*domain.ProductMovement, error)
	AdjustStock(ctx context.Context, salonID, id int64, delta int) error
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
