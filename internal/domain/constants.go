package domain

// Default scheduling values
const (
	// DefaultOpenTime/DefaultCloseTime apply when a salon has no working
	// hours configured at all. A salon with an empty table is never closed.
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"

	DefaultSlotIntervalMinutes = 30
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinInstallments = 1
	MaxInstallments = 12

	MaxCancellationReasonLength  = 500
	MaxMovementDescriptionLength = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов визита.
// После перехода в эти статусы визит больше не изменяется.
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
