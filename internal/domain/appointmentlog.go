package domain

import "time"

// LogAction tags one audit trail entry.
type LogAction string

const (
	LogCreated        LogAction = "created"
	LogServiceAdded   LogAction = "service_added"
	LogServiceRemoved LogAction = "service_removed"
	LogCancelled      LogAction = "cancelled"
	LogCompleted      LogAction = "completed"
)

// AppointmentLog is one append-only audit trail entry. Entries are never
// updated or deleted. Changes is the free-form payload persisted as JSONB;
// it is produced from a typed LogChange variant.
type AppointmentLog struct {
	ID            int64
	SalonID       int64
	AppointmentID int64
	UserID        *int64

	Action  LogAction
	Changes map[string]interface{}

	CreatedAt time.Time
}

// LogChange is a typed audit payload variant. Each variant renders itself to
// the generic map stored in the log row, keeping persistence backward
// compatible while mutation sites stay type safe.
type LogChange interface {
	Action() LogAction
	Changes() map[string]interface{}
}

// CreatedChange is logged when an appointment is created.
type CreatedChange struct {
	ProfessionalID int64
	ClientID       *int64
	StartAt        time.Time
	EndAt          time.Time
	TotalAmount    float64
	ServiceIDs     []int64
}

func (c CreatedChange) Action() LogAction { return LogCreated }

func (c CreatedChange) Changes() map[string]interface{} {
	m := map[string]interface{}{
		"professional_id": c.ProfessionalID,
		"start_at":        c.StartAt.Format(time.RFC3339),
		"end_at":          c.EndAt.Format(time.RFC3339),
		"total_amount":    c.TotalAmount,
		"service_ids":     c.ServiceIDs,
	}
	if c.ClientID != nil {
		m["client_id"] = *c.ClientID
	}
	return m
}

// ServiceAddedChange is logged when a service line is added.
type ServiceAddedChange struct {
	ServiceID       int64
	PriceCharged    float64
	DurationMinutes int
	NewTotal        float64
	NewEndAt        time.Time
}

func (c ServiceAddedChange) Action() LogAction { return LogServiceAdded }

func (c ServiceAddedChange) Changes() map[string]interface{} {
	return map[string]interface{}{
		"service_id":       c.ServiceID,
		"price_charged":    c.PriceCharged,
		"duration_minutes": c.DurationMinutes,
		"new_total":        c.NewTotal,
		"new_end_at":       c.NewEndAt.Format(time.RFC3339),
	}
}

// ServiceRemovedChange is logged when a service line is removed.
type ServiceRemovedChange struct {
	ServiceID       int64
	PriceCharged    float64
	DurationMinutes int
	NewTotal        float64
	NewEndAt        time.Time
}

func (c ServiceRemovedChange) Action() LogAction { return LogServiceRemoved }

func (c ServiceRemovedChange) Changes() map[string]interface{} {
	return map[string]interface{}{
		"service_id":       c.ServiceID,
		"price_charged":    c.PriceCharged,
		"duration_minutes": c.DurationMinutes,
		"new_total":        c.NewTotal,
		"new_end_at":       c.NewEndAt.Format(time.RFC3339),
	}
}

// CancelledChange is logged when an appointment is cancelled.
type CancelledChange struct {
	Reason string
}

func (c CancelledChange) Action() LogAction { return LogCancelled }

func (c CancelledChange) Changes() map[string]interface{} {
	return map[string]interface{}{
		"reason": c.Reason,
	}
}

// CompletedChange is logged when an appointment is completed.
type CompletedChange struct {
	PaymentMethod    PaymentMethod
	Installments     int
	Total            float64
	CommissionAmount float64
	ProductNames     []string
}

func (c CompletedChange) Action() LogAction { return LogCompleted }

func (c CompletedChange) Changes() map[string]interface{} {
	m := map[string]interface{}{
		"payment_method":    string(c.PaymentMethod),
		"installments":      c.Installments,
		"total":             c.Total,
		"commission_amount": c.CommissionAmount,
	}
	if len(c.ProductNames) > 0 {
		m["products_sold"] = c.ProductNames
	}
	return m
}
