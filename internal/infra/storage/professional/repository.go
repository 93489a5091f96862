package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с мастерами салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID в рамках салона
func (r *Repository) GetByID(ctx context.Context, salonID, id int64) (*domain.Professional, error) {
	query, args, err := r.selectProfessionals().
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.SalonID,
		&p.Name,
		&p.CommissionPercentDefault,
		&p.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// CountActiveBySalon считает активных мастеров салона.
// Используется проверкой лимита тарифного плана.
func (r *Repository) CountActiveBySalon(ctx context.Context, salonID int64) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("professionals").
		Where(squirrel.Eq{"salon_id": salonID, "is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySalon - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySalon - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) selectProfessionals() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"commission_percent_default",
		"is_active",
		"created_at",
		"updated_at",
	).From("professionals")
}
