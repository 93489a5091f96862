package models

import (
	"github.com/nkosach/SLN-SalonService/internal/integrations/billing"
)

// SubscriptionResponse ответ с подпиской салона и использованием лимита
type SubscriptionResponse struct {
	SalonID          int64  `json:"salonId"`
	PlanCode         string `json:"planCode"`
	Status           string `json:"status"`
	MaxProfessionals int    `json:"maxProfessionals"`
	ExpiresAt        string `json:"expiresAt,omitempty"`

	// ActiveProfessionals текущее число активных мастеров салона
	ActiveProfessionals int `json:"activeProfessionals"`

	// Degraded true, если биллинг был недоступен и подставлены лимиты базового плана
	Degraded bool `json:"degraded,omitempty"`
}

// FromBillingSubscription конвертирует ответ биллинга в DTO
func FromBillingSubscription(s *billing.Subscription, activeProfessionals int) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		SalonID:             s.SalonID,
		PlanCode:            s.PlanCode,
		Status:              s.Status,
		MaxProfessionals:    s.MaxProfessionals,
		ExpiresAt:           s.ExpiresAt,
		ActiveProfessionals: activeProfessionals,
	}
}
