package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с товарами и складскими движениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает товар по ID в рамках салона
func (r *Repository) GetByID(ctx context.Context, salonID, id int64) (*domain.Product, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"price",
		"stock_quantity",
		"created_at",
		"updated_at",
	).
		From("products").
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Product
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.SalonID,
		&p.Name,
		&p.Price,
		&p.StockQuantity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// CreateMovement дописывает складское движение
func (r *Repository) CreateMovement(ctx context.Context, movement *domain.ProductMovement) (*domain.ProductMovement, error) {
	query, args, err := psqlbuilder.Insert("product_movements").
		Columns(
			"salon_id",
			"product_id",
			"movement_type",
			"quantity",
			"appointment_id",
		).
		Values(
			movement.SalonID,
			movement.ProductID,
			movement.Type,
			movement.Quantity,
			movement.AppointmentID,
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

// AdjustStock сдвигает складской остаток товара на delta.
// Отрицательная delta списывает товар при продаже.
func (r *Repository) AdjustStock(ctx context.Context, salonID, id int64, delta int) error {
	query, args, err := psqlbuilder.Update("products").
		Set("stock_quantity", squirrel.Expr("stock_quantity + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AdjustStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustStock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustStock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
