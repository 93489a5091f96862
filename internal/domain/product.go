package domain

import "time"

// Product is a salon-scoped retail item with a tracked stock quantity.
type Product struct {
	ID      int64
	SalonID int64

	Name          string
	Price         float64
	StockQuantity int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductMovementType encodes the direction of a stock movement.
type ProductMovementType string

const (
	ProductMovementIn  ProductMovementType = "in"
	ProductMovementOut ProductMovementType = "out"
)

// ProductMovement is one append-only stock movement, optionally linked to
// the appointment that sold the product.
type ProductMovement struct {
	ID        int64
	SalonID   int64
	ProductID int64

	Type          ProductMovementType
	Quantity      int
	AppointmentID *int64

	CreatedAt time.Time
}
