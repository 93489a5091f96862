package create_credit_movement

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/credits/models"
)

type CreditService interface {
	AddMovement(ctx context.Context, salonID, clientID int64, req *models.CreateMovementRequest) (*models.MovementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
