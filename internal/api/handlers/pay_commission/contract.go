package pay_commission

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/commissions/models"
)

type CommissionService interface {
	Pay(ctx context.Context, salonID, id int64) (*models.CommissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
