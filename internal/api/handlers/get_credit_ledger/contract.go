package get_credit_ledger

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/service/credits/models"
)

type CreditService interface {
	GetLedger(ctx context.Context, salonID, clientID int64) (*models.LedgerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
