package domain

import "time"

// Salon is the tenant root. Every other entity belongs to a salon by SalonID.
type Salon struct {
	ID       int64
	Name     string
	Timezone string

	// CardFeesByInstallment maps installment count (1-12) to the card
	// processing fee percent deducted from commissions.
	CardFeesByInstallment map[int]float64

	// AdminFeePercent is the administrative fee percent deducted from
	// every commission regardless of payment method.
	AdminFeePercent float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardFeePercent returns the configured card fee for the given installment
// count, or 0 when no row is configured for it.
func (s *Salon) CardFeePercent(installments int) float64 {
	if s.CardFeesByInstallment == nil {
		return 0
	}
	return s.CardFeesByInstallment[installments]
}

// WorkingHours is one row per weekday (0=Sunday .. 6=Saturday) per salon.
// Times are HH:MM strings.
type WorkingHours struct {
	ID        int64
	SalonID   int64
	Weekday   int
	IsOpen    bool
	StartTime string
	EndTime   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
