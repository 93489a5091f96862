package create_appointment

import (
	"time"

	createAppointment "github.com/nkosach/SLN-SalonService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ClientID       *int64  `json:"clientId,omitempty"`
	StartAt        string  `json:"startAt"` // RFC3339, например "2025-10-15T10:00:00Z"
	ServiceIDs     []int64 `json:"serviceIds"`
	Notes          *string `json:"notes,omitempty"`
}

// ServiceLineResponse строка услуги визита
type ServiceLineResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	PriceCharged    float64 `json:"priceCharged"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64                 `json:"id"`
	SalonID        int64                 `json:"salonId"`
	ProfessionalID int64                 `json:"professionalId"`
	ClientID       *int64                `json:"clientId,omitempty"`
	StartAt        string                `json:"startAt"`
	EndAt          string                `json:"endAt"`
	Status         string                `json:"status"`
	TotalAmount    float64               `json:"totalAmount"`
	Services       []ServiceLineResponse `json:"services"`
	CreatedAt      string                `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(salonID int64, userID *int64) (*createAppointment.Request, error) {
	// Парсим время начала визита
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SalonID:        salonID,
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		UserID:         userID,
		StartAt:        startAt,
		ServiceIDs:     r.ServiceIDs,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	services := make([]ServiceLineResponse, len(resp.Services))
	for i, line := range resp.Services {
		services[i] = ServiceLineResponse{
			ID:              line.ID,
			ServiceID:       line.ServiceID,
			PriceCharged:    line.PriceCharged,
			DurationMinutes: line.DurationMinutes,
		}
	}

	return &AppointmentResponse{
		ID:             resp.ID,
		SalonID:        resp.SalonID,
		ProfessionalID: resp.ProfessionalID,
		ClientID:       resp.ClientID,
		StartAt:        resp.StartAt.Format(time.RFC3339),
		EndAt:          resp.EndAt.Format(time.RFC3339),
		Status:         resp.Status,
		TotalAmount:    resp.TotalAmount,
		Services:       services,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
