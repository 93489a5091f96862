package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с визитами и их строками услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"salon_id",
			"professional_id",
			"client_id",
			"start_at",
			"end_at",
			"status",
			"total_amount",
			"notes",
		).
		Values(
			appointment.SalonID,
			appointment.ProfessionalID,
			appointment.ClientID,
			appointment.StartAt,
			appointment.EndAt,
			appointment.Status,
			appointment.TotalAmount,
			appointment.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает визит по ID в рамках салона
func (r *Repository) GetByID(ctx context.Context, salonID, id int64) (*domain.Appointment, error) {
	query, args, err := r.selectAppointments().
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	appointment, err := scanAppointmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListWithFilter получает визиты салона с гибкой фильтрацией.
// Поддерживает фильтрацию по мастеру, клиенту, периоду и статусу.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := r.selectAppointments().
		Where(squirrel.Eq{"salon_id": filter.SalonID})

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		// конец периода включительно, до конца суток
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": filter.EndDate.AddDate(0, 0, 1)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListConfirmedByProfessionalOnDate получает подтвержденные визиты мастера
// на дату. Используется генератором слотов для исключения занятых интервалов.
func (r *Repository) ListConfirmedByProfessionalOnDate(ctx context.Context, salonID, professionalID int64, date time.Time) ([]*domain.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := r.selectAppointments().
		Where(squirrel.Eq{
			"salon_id":        salonID,
			"professional_id": professionalID,
			"status":          domain.StatusConfirmed,
		}).
		Where(squirrel.GtOrEq{"start_at": dayStart}).
		Where(squirrel.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByProfessionalOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByProfessionalOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateTotals обновляет производные поля визита после изменения набора услуг
func (r *Repository) UpdateTotals(ctx context.Context, id int64, totalAmount float64, endAt time.Time) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("total_amount", totalAmount).
		Set("end_at", endAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTotals - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTotals - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateTotals")
}

// Cancel переводит визит в статус cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancelled_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Cancel")
}

// Complete переводит визит в статус completed и фиксирует итоговую сумму,
// включающую проданные при визите товары
func (r *Repository) Complete(ctx context.Context, id int64, totalAmount float64) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("total_amount", totalAmount).
		Set("completed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Complete")
}

// ListServices получает строки услуг визита
func (r *Repository) ListServices(ctx context.Context, appointmentID int64) ([]domain.AppointmentService, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"service_id",
		"price_charged",
		"duration_minutes",
		"created_at",
	).
		From("appointment_services").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.AppointmentService, 0)
	for rows.Next() {
		var item domain.AppointmentService
		var createdAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.AppointmentID,
			&item.ServiceID,
			&item.PriceCharged,
			&item.DurationMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// AddService добавляет строку услуги к визиту
func (r *Repository) AddService(ctx context.Context, item *domain.AppointmentService) (*domain.AppointmentService, error) {
	query, args, err := psqlbuilder.Insert("appointment_services").
		Columns(
			"appointment_id",
			"service_id",
			"price_charged",
			"duration_minutes",
		).
		Values(
			item.AppointmentID,
			item.ServiceID,
			item.PriceCharged,
			item.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AddService - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time

	return item, nil
}

// RemoveService удаляет строку услуги визита
func (r *Repository) RemoveService(ctx context.Context, appointmentID, lineID int64) error {
	query, args, err := psqlbuilder.Delete("appointment_services").
		Where(squirrel.Eq{"id": lineID, "appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveService - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveService - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveService - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceLineNotFound
	}

	return nil
}

func (r *Repository) selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"professional_id",
		"client_id",
		"start_at",
		"end_at",
		"status",
		"total_amount",
		"notes",
		"cancelled_reason",
		"cancelled_at",
		"completed_at",
		"created_at",
		"updated_at",
	).From("appointments")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.SalonID,
		&appointment.ProfessionalID,
		&appointment.ClientID,
		&appointment.StartAt,
		&appointment.EndAt,
		&appointment.Status,
		&appointment.TotalAmount,
		&appointment.Notes,
		&appointment.CancelledReason,
		&appointment.CancelledAt,
		&appointment.CompletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

func scanAppointmentRow(row *sql.Row) (*domain.Appointment, error) {
	return scanAppointment(row)
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func checkAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
