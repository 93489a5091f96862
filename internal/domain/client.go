package domain

import "time"

// Client is a salon-scoped customer. CreditBalance is a materialized running
// total maintained outside this service; the append-only movement ledger is
// the corroborating source. Этот код никогда не пишет кэшированный баланс,
// см. SumMovements для производной суммы.
type Client struct {
	ID      int64
	SalonID int64

	Name  string
	Phone *string
	Email *string

	CreditBalance float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreditMovementType encodes the direction of a credit movement. The type
// field, not the sign, carries the direction: amounts are always positive.
type CreditMovementType string

const (
	MovementCredit CreditMovementType = "credit"
	MovementDebit  CreditMovementType = "debit"
)

// IsValidMovementType returns true for a known movement type.
func IsValidMovementType(t CreditMovementType) bool {
	return t == MovementCredit || t == MovementDebit
}

// ClientCreditMovement is one append-only entry of the client credit ledger.
// Movements are never updated or deleted; corrections are new movements.
type ClientCreditMovement struct {
	ID       int64
	SalonID  int64
	ClientID int64

	Type        CreditMovementType
	Amount      float64
	Description string

	CreatedAt time.Time
}

// SignedAmount returns the movement amount with its direction applied.
func (m *ClientCreditMovement) SignedAmount() float64 {
	if m.Type == MovementDebit {
		return -m.Amount
	}
	return m.Amount
}

// SumMovements returns the signed sum of the ledger.
func SumMovements(movements []ClientCreditMovement) float64 {
	var sum float64
	for i := range movements {
		sum += movements[i].SignedAmount()
	}
	return sum
}
