package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с салонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID вместе с таблицей комиссий эквайринга
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
		"admin_fee_percent",
		"created_at",
		"updated_at",
	).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Timezone,
		&s.AdminFeePercent,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	cardFees, err := r.getCardFees(ctx, id)
	if err != nil {
		return nil, err
	}
	s.CardFeesByInstallment = cardFees

	return &s, nil
}

// getCardFees получает комиссии эквайринга по числу платежей
func (r *Repository) getCardFees(ctx context.Context, salonID int64) (map[int]float64, error) {
	query, args, err := psqlbuilder.Select("installments", "fee_percent").
		From("salon_card_fees").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("installments ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getCardFees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getCardFees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fees := make(map[int]float64)
	for rows.Next() {
		var installments int
		var percent float64
		if err := rows.Scan(&installments, &percent); err != nil {
			return nil, fmt.Errorf("%w: getCardFees - scan row: %v", ErrScanRow, err)
		}
		fees[installments] = percent
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getCardFees - rows error: %v", ErrScanRow, err)
	}

	return fees, nil
}
