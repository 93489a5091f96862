package list_commissions

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/commissions/models"
)

type CommissionService interface {
	List(ctx context.Context, req *models.ListCommissionsRequest) (*models.CommissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
