package domain

import "time"

// Professional belongs to a salon and earns commissions on completed
// appointments, by default CommissionPercentDefault of the service revenue
// unless a service-specific CommissionRule overrides it.
type Professional struct {
	ID      int64
	SalonID int64

	Name                     string
	CommissionPercentDefault float64
	IsActive                 bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service is a salon-scoped catalog item.
type Service struct {
	ID      int64
	SalonID int64

	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
