package models

import (
	"errors"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение визитов салона
type ListAppointmentsRequest struct {
	SalonID        int64      `json:"salonId"`
	ProfessionalID *int64     `json:"professionalId,omitempty"` // Фильтр по мастеру (опционально)
	ClientID       *int64     `json:"clientId,omitempty"`       // Фильтр по клиенту (опционально)
	StartDate      *time.Time `json:"startDate,omitempty"`      // Начало периода (опционально)
	EndDate        *time.Time `json:"endDate,omitempty"`        // Конец периода (опционально)
	Status         *string    `json:"status,omitempty"`         // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		SalonID:        r.SalonID,
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AddServiceRequest запрос на добавление услуги к визиту
type AddServiceRequest struct {
	UserID    *int64 `json:"userId,omitempty"`
	ServiceID int64  `json:"serviceId"`
}

// RemoveServiceRequest запрос на удаление услуги визита
type RemoveServiceRequest struct {
	UserID *int64 `json:"userId,omitempty"`
	LineID int64  `json:"lineId"`
}

// CancelAppointmentRequest запрос на отмену визита
type CancelAppointmentRequest struct {
	UserID *int64 `json:"userId,omitempty"`
	Reason string `json:"reason"`
}

// Response модели

// ServiceLineResponse строка услуги визита
type ServiceLineResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	PriceCharged    float64 `json:"priceCharged"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AppointmentResponse ответ с данными визита
type AppointmentResponse struct {
	ID             int64  `json:"id"`
	SalonID        int64  `json:"salonId"`
	ProfessionalID int64  `json:"professionalId"`
	ClientID       *int64 `json:"clientId,omitempty"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`

	Notes           *string `json:"notes,omitempty"`
	CancelledReason *string `json:"cancelledReason,omitempty"`
	CancelledAt     *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	CompletedAt     *string `json:"completedAt,omitempty"` // ISO 8601 format

	Services []ServiceLineResponse `json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком визитов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, items []domain.AppointmentService) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		SalonID:         a.SalonID,
		ProfessionalID:  a.ProfessionalID,
		ClientID:        a.ClientID,
		StartAt:         a.StartAt,
		EndAt:           a.EndAt,
		Status:          string(a.Status),
		TotalAmount:     a.TotalAmount,
		Notes:           a.Notes,
		CancelledReason: a.CancelledReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}
	if a.CompletedAt != nil {
		completedStr := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedStr
	}

	if items != nil {
		resp.Services = make([]ServiceLineResponse, len(items))
		for i, item := range items {
			resp.Services[i] = ServiceLineResponse{
				ID:              item.ID,
				ServiceID:       item.ServiceID,
				PriceCharged:    item.PriceCharged,
				DurationMinutes: item.DurationMinutes,
			}
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if appointmentResp := FromDomainAppointment(appointment, nil); appointmentResp != nil {
			resp.Appointments[i] = *appointmentResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidAppointmentStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
