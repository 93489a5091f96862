package models

import (
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// Request модели

// WorkingHoursDay одна строка графика работы
type WorkingHoursDay struct {
	Weekday   int    `json:"weekday"` // 0=воскресенье .. 6=суббота
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateWorkingHoursRequest запрос на обновление графика работы
type UpdateWorkingHoursRequest struct {
	Days []WorkingHoursDay `json:"days"`
}

// CreateTimeBlockRequest запрос на создание блокировки времени
type CreateTimeBlockRequest struct {
	ProfessionalID    int64      `json:"professionalId"`
	StartAt           time.Time  `json:"startAt"`
	EndAt             time.Time  `json:"endAt"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurrenceType    *string    `json:"recurrenceType,omitempty"`    // daily | weekly | monthly
	RecurrenceDays    []int      `json:"recurrenceDays,omitempty"`    // дни недели для weekly
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate,omitempty"` // включительно
	Reason            string     `json:"reason"`
}

// Response модели

// WorkingHoursResponse ответ с графиком работы салона
type WorkingHoursResponse struct {
	Days []WorkingHoursDay `json:"days"`
}

// TimeBlockResponse ответ с данными блокировки
type TimeBlockResponse struct {
	ID             int64 `json:"id"`
	SalonID        int64 `json:"salonId"`
	ProfessionalID int64 `json:"professionalId"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	IsRecurring       bool       `json:"isRecurring"`
	RecurrenceType    *string    `json:"recurrenceType,omitempty"`
	RecurrenceDays    []int      `json:"recurrenceDays,omitempty"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate,omitempty"`

	Reason string `json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
}

// TimeBlockListResponse ответ со списком блокировок
type TimeBlockListResponse struct {
	TimeBlocks []TimeBlockResponse `json:"timeBlocks"`
}

// Методы конвертации

// FromDomainWorkingHours конвертирует строки графика в DTO
func FromDomainWorkingHours(hours []domain.WorkingHours) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{
		Days: make([]WorkingHoursDay, len(hours)),
	}
	for i, h := range hours {
		resp.Days[i] = WorkingHoursDay{
			Weekday:   h.Weekday,
			IsOpen:    h.IsOpen,
			StartTime: h.StartTime,
			EndTime:   h.EndTime,
		}
	}
	return resp
}

// FromDomainTimeBlock конвертирует domain модель в DTO
func FromDomainTimeBlock(b *domain.TimeBlock) *TimeBlockResponse {
	if b == nil {
		return nil
	}

	resp := &TimeBlockResponse{
		ID:                b.ID,
		SalonID:           b.SalonID,
		ProfessionalID:    b.ProfessionalID,
		StartAt:           b.StartAt,
		EndAt:             b.EndAt,
		IsRecurring:       b.IsRecurring,
		RecurrenceDays:    b.RecurrenceDays,
		RecurrenceEndDate: b.RecurrenceEndDate,
		Reason:            b.Reason,
		CreatedAt:         b.CreatedAt,
	}

	if b.RecurrenceType != nil {
		t := string(*b.RecurrenceType)
		resp.RecurrenceType = &t
	}

	return resp
}

// FromDomainTimeBlockList конвертирует список domain моделей в DTO
func FromDomainTimeBlockList(blocks []domain.TimeBlock) *TimeBlockListResponse {
	resp := &TimeBlockListResponse{
		TimeBlocks: make([]TimeBlockResponse, len(blocks)),
	}
	for i := range blocks {
		if blockResp := FromDomainTimeBlock(&blocks[i]); blockResp != nil {
			resp.TimeBlocks[i] = *blockResp
		}
	}
	return resp
}
