package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValidAppointmentStatus returns true for a known status value.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	return s == StatusConfirmed || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a scheduled visit of a client to a professional.
// TotalAmount and EndAt are derived from the line-item set and must stay
// consistent with it on every add/remove.
type Appointment struct {
	ID             int64
	SalonID        int64
	ProfessionalID int64
	ClientID       *int64

	StartAt time.Time
	EndAt   time.Time

	Status      AppointmentStatus
	TotalAmount float64

	Notes           *string
	CancelledReason *string
	CancelledAt     *time.Time
	CompletedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the appointment reached a terminal state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeCompleted returns true if the appointment can be completed.
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// CanBeModified returns true if services can still be added or removed.
func (a *Appointment) CanBeModified() bool {
	return a.Status == StatusConfirmed
}

// AppointmentService is one service line item of an appointment with the
// price and duration charged at booking time.
type AppointmentService struct {
	ID            int64
	AppointmentID int64
	ServiceID     int64
	PriceCharged  float64
	DurationMinutes int

	CreatedAt time.Time
}

// ServicesTotal sums the charged prices of the line items.
func ServicesTotal(items []AppointmentService) float64 {
	var total float64
	for i := range items {
		total += items[i].PriceCharged
	}
	return total
}

// ServicesDuration sums the durations of the line items in minutes.
func ServicesDuration(items []AppointmentService) int {
	var total int
	for i := range items {
		total += items[i].DurationMinutes
	}
	return total
}

// AppointmentsFilter фильтр для выборки визитов салона
type AppointmentsFilter struct {
	SalonID        int64 // обязательный параметр
	ProfessionalID *int64
	ClientID       *int64
	StartDate      *time.Time
	EndDate        *time.Time
	Status         *AppointmentStatus
}
