package domain

import "time"

// CashflowEntryType separates income from expense entries.
type CashflowEntryType string

const (
	CashflowIncome  CashflowEntryType = "income"
	CashflowExpense CashflowEntryType = "expense"
)

// CashflowEntry is an income/expense record used for reporting aggregation,
// optionally linked to the appointment that produced it.
type CashflowEntry struct {
	ID      int64
	SalonID int64

	Type        CashflowEntryType
	Amount      float64
	Description string

	AppointmentID *int64
	PaymentMethod *PaymentMethod

	EntryDate time.Time
	CreatedAt time.Time
}
