package domain

import "time"

// PaymentMethod is how the client paid a completed appointment.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// IsValidPaymentMethod returns true for a known payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentPix
}

// Payment is the payment record created when an appointment is completed.
type Payment struct {
	ID            int64
	SalonID       int64
	AppointmentID int64

	Method       PaymentMethod
	Installments int
	Amount       float64

	CreatedAt time.Time
}
