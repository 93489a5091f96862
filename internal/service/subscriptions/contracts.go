package subscriptions

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/integrations/billing"
)

// BillingClient интерфейс клиента биллинг-провайдера
type BillingClient interface {
	GetSubscriptionWithGracefulDegradation(ctx context.Context, salonID int64) (*billing.Subscription, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	CountActiveBySalon(ctx context.Context, salonID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
