package models

import (
	"errors"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе комиссии
	ErrInvalidStatus = errors.New("invalid commission status")
)

// Request модели

// ListCommissionsRequest запрос на получение комиссий салона
type ListCommissionsRequest struct {
	SalonID        int64   `json:"salonId"`
	ProfessionalID *int64  `json:"professionalId,omitempty"` // Фильтр по мастеру (опционально)
	Status         *string `json:"status,omitempty"`         // pending | paid (опционально)
}

// Response модели

// CommissionResponse ответ с данными комиссии
type CommissionResponse struct {
	ID             int64 `json:"id"`
	SalonID        int64 `json:"salonId"`
	AppointmentID  int64 `json:"appointmentId"`
	ProfessionalID int64 `json:"professionalId"`

	GrossAmount    float64 `json:"grossAmount"`
	CardFeeAmount  float64 `json:"cardFeeAmount"`
	AdminFeeAmount float64 `json:"adminFeeAmount"`
	Amount         float64 `json:"amount"`

	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	PaidAt        *string `json:"paidAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
}

// CommissionListResponse ответ со списком комиссий
type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
}

// Методы конвертации

// FromDomainCommission конвертирует domain модель в DTO
func FromDomainCommission(c *domain.Commission) *CommissionResponse {
	if c == nil {
		return nil
	}

	resp := &CommissionResponse{
		ID:             c.ID,
		SalonID:        c.SalonID,
		AppointmentID:  c.AppointmentID,
		ProfessionalID: c.ProfessionalID,
		GrossAmount:    c.GrossAmount,
		CardFeeAmount:  c.CardFeeAmount,
		AdminFeeAmount: c.AdminFeeAmount,
		Amount:         c.Amount,
		Status:         string(c.Status),
		PaymentMethod:  string(c.PaymentMethod),
		CreatedAt:      c.CreatedAt,
	}

	if c.PaidAt != nil {
		paidStr := c.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidStr
	}

	return resp
}

// FromDomainCommissionList конвертирует список domain моделей в DTO
func FromDomainCommissionList(commissions []*domain.Commission) *CommissionListResponse {
	if commissions == nil {
		return &CommissionListResponse{
			Commissions: []CommissionResponse{},
		}
	}

	resp := &CommissionListResponse{
		Commissions: make([]CommissionResponse, len(commissions)),
	}

	for i, commission := range commissions {
		if commissionResp := FromDomainCommission(commission); commissionResp != nil {
			resp.Commissions[i] = *commissionResp
		}
	}

	return resp
}

// ToDomainCommissionStatus конвертирует строку в domain.CommissionStatus с валидацией
func ToDomainCommissionStatus(status string) (domain.CommissionStatus, error) {
	s := domain.CommissionStatus(status)
	if s != domain.CommissionPending && s != domain.CommissionPaid {
		return "", ErrInvalidStatus
	}
	return s, nil
}
