package appointmentlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий журнала изменений визитов.
// Журнал только дописывается: записи не обновляются и не удаляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create дописывает запись журнала
func (r *Repository) Create(ctx context.Context, log *domain.AppointmentLog) (*domain.AppointmentLog, error) {
	changes, err := json.Marshal(log.Changes)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal changes: %v", ErrEncodeChanges, err)
	}

	query, args, err := psqlbuilder.Insert("appointment_logs").
		Columns(
			"salon_id",
			"appointment_id",
			"user_id",
			"action",
			"changes",
		).
		Values(
			log.SalonID,
			log.AppointmentID,
			log.UserID,
			log.Action,
			changes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&log.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	log.CreatedAt = createdAt.Time

	return log, nil
}

// ListByAppointment получает историю изменений визита в порядке записи
func (r *Repository) ListByAppointment(ctx context.Context, salonID, appointmentID int64) ([]*domain.AppointmentLog, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"appointment_id",
		"user_id",
		"action",
		"changes",
		"created_at",
	).
		From("appointment_logs").
		Where(squirrel.Eq{"salon_id": salonID, "appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	logs := make([]*domain.AppointmentLog, 0)
	for rows.Next() {
		var log domain.AppointmentLog
		var changes []byte
		var createdAt sql.NullTime

		err := rows.Scan(
			&log.ID,
			&log.SalonID,
			&log.AppointmentID,
			&log.UserID,
			&log.Action,
			&changes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan row: %v", ErrScanRow, err)
		}

		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &log.Changes); err != nil {
				return nil, fmt.Errorf("%w: ListByAppointment - unmarshal changes: %v", ErrScanRow, err)
			}
		}

		log.CreatedAt = createdAt.Time
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}

	return logs, nil
}
