package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с графиком работы салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория графика работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBySalon получает все строки графика работы салона.
// Пустой результат означает, что график не настроен: резолвер расписания
// в этом случае подставляет окно по умолчанию.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64) ([]domain.WorkingHours, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"weekday",
		"is_open",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.WorkingHours, 0)
	for rows.Next() {
		var h domain.WorkingHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.SalonID,
			&h.Weekday,
			&h.IsOpen,
			&h.StartTime,
			&h.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Upsert создает или обновляет строку графика для пары (салон, день недели)
func (r *Repository) Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error) {
	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"salon_id",
			"weekday",
			"is_open",
			"start_time",
			"end_time",
		).
		Values(
			hours.SalonID,
			hours.Weekday,
			hours.IsOpen,
			hours.StartTime,
			hours.EndTime,
		).
		Suffix(`ON CONFLICT (salon_id, weekday) DO UPDATE
			SET is_open = EXCLUDED.is_open,
			    start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}
