package cashflow

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями движения денежных средств
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория денежных потоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись дохода или расхода
func (r *Repository) Create(ctx context.Context, entry *domain.CashflowEntry) (*domain.CashflowEntry, error) {
	query, args, err := psqlbuilder.Insert("cashflow_entries").
		Columns(
			"salon_id",
			"entry_type",
			"amount",
			"description",
			"appointment_id",
			"payment_method",
			"entry_date",
		).
		Values(
			entry.SalonID,
			entry.Type,
			entry.Amount,
			entry.Description,
			entry.AppointmentID,
			entry.PaymentMethod,
			entry.EntryDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// ListBySalon получает записи салона за период
func (r *Repository) ListBySalon(ctx context.Context, salonID int64, startDate, endDate *time.Time) ([]*domain.CashflowEntry, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"salon_id",
		"entry_type",
		"amount",
		"description",
		"appointment_id",
		"payment_method",
		"entry_date",
		"created_at",
	).
		From("cashflow_entries").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("entry_date DESC, id DESC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"entry_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"entry_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.CashflowEntry, 0)
	for rows.Next() {
		var entry domain.CashflowEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.SalonID,
			&entry.Type,
			&entry.Amount,
			&entry.Description,
			&entry.AppointmentID,
			&entry.PaymentMethod,
			&entry.EntryDate,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
