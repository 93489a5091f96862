package get_subscription

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	GetSubscription(ctx context.Context, salonID int64) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
