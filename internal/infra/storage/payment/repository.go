package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись платежа за завершенный визит
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"salon_id",
			"appointment_id",
			"method",
			"installments",
			"amount",
		).
		Values(
			payment.SalonID,
			payment.AppointmentID,
			payment.Method,
			payment.Installments,
			payment.Amount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}
