package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	timeBlockRepo    TimeBlockRepository
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingHoursRepo WorkingHoursRepository,
	timeBlockRepo TimeBlockRepository,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		timeBlockRepo:    timeBlockRepo,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Слот доступен, если он попадает в рабочее окно салона, не пересекается
// с блокировками мастера и с его подтвержденными визитами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, professional=%d, date=%s",
		req.SalonID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	slotDuration := req.DurationMinutes
	if slotDuration == 0 {
		slotDuration = domain.DefaultSlotDurationMinutes
	}

	// 2. Проверяем мастера
	prof, err := uc.professionalRepo.GetByID(ctx, req.SalonID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional=%d not found in salon=%d", req.ProfessionalID, req.SalonID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !prof.IsActive {
		uc.logger.Warn("GetAvailableSlots: professional=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 3. Резолвим рабочее окно салона на дату
	hours, err := uc.workingHoursRepo.ListBySalon(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	window := domain.ResolveWorkingWindow(hours, req.Date)
	if window == nil {
		uc.logger.Info("GetAvailableSlots: salon=%d is closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:           req.Date,
			SalonID:        req.SalonID,
			ProfessionalID: req.ProfessionalID,
			Slots:          []Slot{},
		}, nil
	}

	// 4. Генерируем сетку слотов
	grid := domain.GenerateSlots(window, domain.DefaultSlotIntervalMinutes)

	// 5. Фильтруем по блокировкам мастера
	blocks, err := uc.timeBlockRepo.ListByProfessional(ctx, req.SalonID, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}
	candidates := filterBlockedSlots(grid, blocks, req.ProfessionalID, req.Date, slotDuration)

	// 6. Фильтруем по подтвержденным визитам
	appointments, err := uc.appointmentRepo.ListConfirmedByProfessionalOnDate(ctx, req.SalonID, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	candidates = filterBookedSlots(candidates, appointments, req.Date, slotDuration)

	// 7. Прошедшие слоты сегодняшнего дня недоступны
	candidates = filterPastSlots(candidates, req.Date, now)

	slots := make([]Slot, len(candidates))
	for i, slot := range candidates {
		slots[i] = Slot{
			StartTime:       slot,
			DurationMinutes: slotDuration,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for professional=%d on %s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		SalonID:        req.SalonID,
		ProfessionalID: req.ProfessionalID,
		Slots:          slots,
	}, nil
}
