package timeblock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками времени мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку времени
func (r *Repository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	query, args, err := psqlbuilder.Insert("time_blocks").
		Columns(
			"salon_id",
			"professional_id",
			"start_at",
			"end_at",
			"is_recurring",
			"recurrence_type",
			"recurrence_days",
			"recurrence_end_date",
			"reason",
		).
		Values(
			block.SalonID,
			block.ProfessionalID,
			block.StartAt,
			block.EndAt,
			block.IsRecurring,
			block.RecurrenceType,
			pq.Array(toInt64s(block.RecurrenceDays)),
			block.RecurrenceEndDate,
			block.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// ListBySalon получает все блокировки салона.
// Повторяющиеся блокировки не фильтруются по дате на уровне SQL: решение
// о пересечении со слотом принимает доменная проверка.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64) ([]domain.TimeBlock, error) {
	selectBuilder := r.selectBlocks().
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("start_at ASC")

	return r.queryBlocks(ctx, "ListBySalon", selectBuilder)
}

// ListByProfessional получает блокировки одного мастера
func (r *Repository) ListByProfessional(ctx context.Context, salonID, professionalID int64) ([]domain.TimeBlock, error) {
	selectBuilder := r.selectBlocks().
		Where(squirrel.Eq{"salon_id": salonID, "professional_id": professionalID}).
		OrderBy("start_at ASC")

	return r.queryBlocks(ctx, "ListByProfessional", selectBuilder)
}

// Delete удаляет блокировку в рамках салона
func (r *Repository) Delete(ctx context.Context, salonID, id int64) error {
	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeBlockNotFound
	}

	return nil
}

func (r *Repository) selectBlocks() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"professional_id",
		"start_at",
		"end_at",
		"is_recurring",
		"recurrence_type",
		"recurrence_days",
		"recurrence_end_date",
		"reason",
		"created_at",
		"updated_at",
	).From("time_blocks")
}

func (r *Repository) queryBlocks(ctx context.Context, method string, selectBuilder squirrel.SelectBuilder) ([]domain.TimeBlock, error) {
	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	blocks := make([]domain.TimeBlock, 0)
	for rows.Next() {
		var block domain.TimeBlock
		var recurrenceDays pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.SalonID,
			&block.ProfessionalID,
			&block.StartAt,
			&block.EndAt,
			&block.IsRecurring,
			&block.RecurrenceType,
			&recurrenceDays,
			&block.RecurrenceEndDate,
			&block.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		block.RecurrenceDays = toInts(recurrenceDays)
		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time

		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return blocks, nil
}

func toInt64s(days []int) []int64 {
	if days == nil {
		return nil
	}
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

func toInts(days pq.Int64Array) []int {
	if len(days) == 0 {
		return nil
	}
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}
