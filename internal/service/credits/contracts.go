package credits

import (
	"context"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов и кредитного журнала
type ClientRepository interface {
	GetByID(ctx context.Context, salonID, id int64) (*domain.Client, error)
	CreateMovement(ctx context.Context, movement *domain.ClientCreditMovement) (*domain.ClientCreditMovement, error)
	ListMovements(ctx context.Context, salonID, clientID int64) ([]domain.ClientCreditMovement, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
