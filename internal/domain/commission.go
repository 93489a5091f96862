package domain

import "time"

// CommissionRuleType determines how a service-specific commission override
// is applied.
type CommissionRuleType string

const (
	CommissionRulePercent CommissionRuleType = "percent"
	CommissionRuleFixed   CommissionRuleType = "fixed"
)

// CommissionRule is a professional's service-specific commission override.
// A percent rule yields value% of the service price, a fixed rule yields the
// flat value regardless of price.
type CommissionRule struct {
	ID             int64
	SalonID        int64
	ProfessionalID int64
	ServiceID      int64
	Type           CommissionRuleType
	Value          float64
}

// CommissionStatus represents the payout status of a commission.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

// Commission is the payout record for one completed appointment and
// professional. Amount is the net value after fee deduction.
type Commission struct {
	ID             int64
	SalonID        int64
	AppointmentID  int64
	ProfessionalID int64

	GrossAmount   float64
	CardFeeAmount float64
	AdminFeeAmount float64
	Amount        float64 // net = gross - card fee - admin fee

	Status        CommissionStatus
	PaymentMethod PaymentMethod
	PaidAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBePaid returns true if the commission is still pending payout.
func (c *Commission) CanBePaid() bool {
	return c.Status == CommissionPending
}

// CommissionBreakdown is the result of a commission calculation.
type CommissionBreakdown struct {
	Gross    float64
	CardFee  float64
	AdminFee float64
	Net      float64
}

// CalculateCommission derives the commission for a set of appointment
// service lines.
//
// Per line: the professional's override for that service wins when present
// (percent → value% of the charged price, fixed → flat value); otherwise
// defaultPercent applies to the charged price. The summed gross is then
// reduced by the card fee for the installment count and by the admin fee.
// Обе комиссии считаются безусловно из конфигурации салона, независимо от
// способа оплаты. Net не ограничивается нулем: агрессивная конфигурация
// комиссий может увести его в минус, и это отдается наружу как есть.
func CalculateCommission(
	lines []AppointmentService,
	defaultPercent float64,
	overrides map[int64]CommissionRule,
	cardFeePercent float64,
	adminFeePercent float64,
) CommissionBreakdown {
	var gross float64

	for i := range lines {
		line := lines[i]
		rule, ok := overrides[line.ServiceID]
		if !ok {
			gross += line.PriceCharged * defaultPercent / 100
			continue
		}
		switch rule.Type {
		case CommissionRuleFixed:
			gross += rule.Value
		default:
			gross += line.PriceCharged * rule.Value / 100
		}
	}

	cardFee := gross * cardFeePercent / 100
	adminFee := gross * adminFeePercent / 100

	return CommissionBreakdown{
		Gross:    gross,
		CardFee:  cardFee,
		AdminFee: adminFee,
		Net:      gross - cardFee - adminFee,
	}
}
