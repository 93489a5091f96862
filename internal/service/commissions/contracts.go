package commissions

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// CommissionRepository интерфейс репозитория комиссий
type CommissionRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Commission, error)
	ListBySalon(ctx context.Context, salonID int64, professionalID *int64, status *domain.CommissionStatus) ([]*domain.Commission, error)
	MarkPaid(ctx context.Context, salonID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
