package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCommission_DefaultPercentWithFees(t *testing.T) {
	lines := []AppointmentService{
		{ServiceID: 1, PriceCharged: 100},
	}

	// 40% по умолчанию, карта в 3 платежа с комиссией 5%, админ. сбор 2%
	got := CalculateCommission(lines, 40, nil, 5, 2)

	assert.InDelta(t, 40.0, got.Gross, 1e-9)
	assert.InDelta(t, 2.0, got.CardFee, 1e-9)
	assert.InDelta(t, 0.8, got.AdminFee, 1e-9)
	assert.InDelta(t, 37.2, got.Net, 1e-9)
}

func TestCalculateCommission_FixedOverrideWinsOverDefault(t *testing.T) {
	lines := []AppointmentService{
		{ServiceID: 5, PriceCharged: 300},
	}
	overrides := map[int64]CommissionRule{
		5: {ServiceID: 5, Type: CommissionRuleFixed, Value: 25},
	}

	got := CalculateCommission(lines, 40, overrides, 0, 0)

	// Фиксированное правило не зависит от цены услуги
	assert.InDelta(t, 25.0, got.Gross, 1e-9)
	assert.InDelta(t, 25.0, got.Net, 1e-9)
}

func TestCalculateCommission_PercentOverride(t *testing.T) {
	lines := []AppointmentService{
		{ServiceID: 5, PriceCharged: 200},
	}
	overrides := map[int64]CommissionRule{
		5: {ServiceID: 5, Type: CommissionRulePercent, Value: 10},
	}

	got := CalculateCommission(lines, 40, overrides, 0, 0)

	assert.InDelta(t, 20.0, got.Gross, 1e-9)
}

func TestCalculateCommission_MixedLines(t *testing.T) {
	lines := []AppointmentService{
		{ServiceID: 1, PriceCharged: 100}, // default 40% → 40
		{ServiceID: 2, PriceCharged: 80},  // fixed → 25
	}
	overrides := map[int64]CommissionRule{
		2: {ServiceID: 2, Type: CommissionRuleFixed, Value: 25},
	}

	got := CalculateCommission(lines, 40, overrides, 0, 0)

	assert.InDelta(t, 65.0, got.Gross, 1e-9)
}

func TestCalculateCommission_NetCanGoNegative(t *testing.T) {
	lines := []AppointmentService{
		{ServiceID: 1, PriceCharged: 100},
	}

	// Net не ограничивается нулем при агрессивной конфигурации сборов
	got := CalculateCommission(lines, 10, nil, 60, 50)

	assert.InDelta(t, 10.0, got.Gross, 1e-9)
	assert.True(t, got.Net < 0)
}

func TestCalculateCommission_NoLines(t *testing.T) {
	got := CalculateCommission(nil, 40, nil, 5, 2)

	assert.Zero(t, got.Gross)
	assert.Zero(t, got.Net)
}
