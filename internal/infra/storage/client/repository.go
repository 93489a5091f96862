package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами и их кредитным журналом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID в рамках салона
func (r *Repository) GetByID(ctx context.Context, salonID, id int64) (*domain.Client, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"phone",
		"email",
		"credit_balance",
		"created_at",
		"updated_at",
	).
		From("clients").
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.SalonID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.CreditBalance,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// CreateMovement дописывает запись в кредитный журнал клиента.
// Журнал только дописывается, суммы всегда положительные, направление
// кодируется полем type.
func (r *Repository) CreateMovement(ctx context.Context, movement *domain.ClientCreditMovement) (*domain.ClientCreditMovement, error) {
	query, args, err := psqlbuilder.Insert("client_credit_movements").
		Columns(
			"salon_id",
			"client_id",
			"movement_type",
			"amount",
			"description",
		).
		Values(
			movement.SalonID,
			movement.ClientID,
			movement.Type,
			movement.Amount,
			movement.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMovement - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&movement.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMovement - execute insert: %v", ErrExecQuery, err)
	}

	movement.CreatedAt = createdAt.Time

	return movement, nil
}

// ListMovements получает кредитный журнал клиента в порядке записи
func (r *Repository) ListMovements(ctx context.Context, salonID, clientID int64) ([]domain.ClientCreditMovement, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"client_id",
		"movement_type",
		"amount",
		"description",
		"created_at",
	).
		From("client_credit_movements").
		Where(squirrel.Eq{"salon_id": salonID, "client_id": clientID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMovements - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMovements - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	movements := make([]domain.ClientCreditMovement, 0)
	for rows.Next() {
		var m domain.ClientCreditMovement
		var createdAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.SalonID,
			&m.ClientID,
			&m.Type,
			&m.Amount,
			&m.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMovements - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMovements - rows error: %v", ErrScanRow, err)
	}

	return movements, nil
}
