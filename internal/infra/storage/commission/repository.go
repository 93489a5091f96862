package commission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с комиссиями мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комиссий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись комиссии за завершенный визит
func (r *Repository) Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error) {
	query, args, err := psqlbuilder.Insert("commissions").
		Columns(
			"salon_id",
			"appointment_id",
			"professional_id",
			"gross_amount",
			"card_fee_amount",
			"admin_fee_amount",
			"amount",
			"status",
			"payment_method",
		).
		Values(
			commission.SalonID,
			commission.AppointmentID,
			commission.ProfessionalID,
			commission.GrossAmount,
			commission.CardFeeAmount,
			commission.AdminFeeAmount,
			commission.Amount,
			commission.Status,
			commission.PaymentMethod,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&commission.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	commission.CreatedAt = createdAt.Time
	commission.UpdatedAt = updatedAt.Time

	return commission, nil
}

// GetByID получает комиссию по ID в рамках салона
func (r *Repository) GetByID(ctx context.Context, salonID, id int64) (*domain.Commission, error) {
	query, args, err := r.selectCommissions().
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Commission
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.SalonID,
		&c.AppointmentID,
		&c.ProfessionalID,
		&c.GrossAmount,
		&c.CardFeeAmount,
		&c.AdminFeeAmount,
		&c.Amount,
		&c.Status,
		&c.PaymentMethod,
		&c.PaidAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCommissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan commission: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// ListBySalon получает комиссии салона.
// Опционально фильтрует по мастеру и статусу выплаты.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64, professionalID *int64, status *domain.CommissionStatus) ([]*domain.Commission, error) {
	selectBuilder := r.selectCommissions().
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("created_at DESC")

	if professionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *professionalID})
	}
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
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

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		var c domain.Commission
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.SalonID,
			&c.AppointmentID,
			&c.ProfessionalID,
			&c.GrossAmount,
			&c.CardFeeAmount,
			&c.AdminFeeAmount,
			&c.Amount,
			&c.Status,
			&c.PaymentMethod,
			&c.PaidAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		commissions = append(commissions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return commissions, nil
}

// MarkPaid переводит комиссию в статус paid
func (r *Repository) MarkPaid(ctx context.Context, salonID, id int64) error {
	query, args, err := psqlbuilder.Update("commissions").
		Set("status", domain.CommissionPaid).
		Set("paid_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCommissionNotFound
	}

	return nil
}

// GetRulesByProfessional получает переопределения комиссии мастера,
// сгруппированные по услуге
func (r *Repository) GetRulesByProfessional(ctx context.Context, salonID, professionalID int64) (map[int64]domain.CommissionRule, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"professional_id",
		"service_id",
		"rule_type",
		"value",
	).
		From("commission_rules").
		Where(squirrel.Eq{"salon_id": salonID, "professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make(map[int64]domain.CommissionRule)
	for rows.Next() {
		var rule domain.CommissionRule

		err := rows.Scan(
			&rule.ID,
			&rule.SalonID,
			&rule.ProfessionalID,
			&rule.ServiceID,
			&rule.Type,
			&rule.Value,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRulesByProfessional - scan row: %v", ErrScanRow, err)
		}

		rules[rule.ServiceID] = rule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRulesByProfessional - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func (r *Repository) selectCommissions() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"appointment_id",
		"professional_id",
		"gross_amount",
		"card_fee_amount",
		"admin_fee_amount",
		"amount",
		"status",
		"payment_method",
		"paid_at",
		"created_at",
		"updated_at",
	).From("commissions")
}
