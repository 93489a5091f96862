package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
	timeblockRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/timeblock"
	"github.com/nkosach/SLN-SalonService/internal/service/schedule/models"
	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// Service сервис управления графиком работы и блокировками времени
type Service struct {
	workingHoursRepo WorkingHoursRepository
	timeBlockRepo    TimeBlockRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepo WorkingHoursRepository,
	timeBlockRepo TimeBlockRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		timeBlockRepo:    timeBlockRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetWorkingHours получает настроенный график работы салона.
// Пустой список означает, что график не настроен и действует окно по умолчанию.
func (s *Service) GetWorkingHours(ctx context.Context, salonID int64) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching working hours for salon=%d", salonID)

	hours, err := s.workingHoursRepo.ListBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkingHours: successfully fetched %d rows for salon=%d", len(hours), salonID)
	return models.FromDomainWorkingHours(hours), nil
}

// UpdateWorkingHours создает или обновляет строки графика работы салона
func (s *Service) UpdateWorkingHours(ctx context.Context, salonID int64, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating %d rows for salon=%d", len(req.Days), salonID)

	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: empty days list", ErrInvalidInput)
	}

	for _, day := range req.Days {
		if err := validateDay(day); err != nil {
			s.logger.Warn("UpdateWorkingHours: invalid day row for salon=%d: %v", salonID, err)
			return nil, err
		}
	}

	for _, day := range req.Days {
		row := &domain.WorkingHours{
			SalonID:   salonID,
			Weekday:   day.Weekday,
			IsOpen:    day.IsOpen,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		}
		if _, err := s.workingHoursRepo.Upsert(ctx, row); err != nil {
			s.logger.Error("UpdateWorkingHours: failed to upsert weekday=%d for salon=%d: %v", day.Weekday, salonID, err)
			return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
		}
	}

	hours, err := s.workingHoursRepo.ListBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: failed to refetch rows for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully updated working hours for salon=%d", salonID)
	return models.FromDomainWorkingHours(hours), nil
}

// CreateTimeBlock создает блокировку времени мастера
func (s *Service) CreateTimeBlock(ctx context.Context, salonID int64, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("CreateTimeBlock: creating block for professional=%d, salon=%d", req.ProfessionalID, salonID)

	if !req.EndAt.After(req.StartAt) {
		s.logger.Warn("CreateTimeBlock: end_at is not after start_at for salon=%d", salonID)
		return nil, ErrInvalidTimeRange
	}

	var recurrenceType *domain.RecurrenceType
	if req.IsRecurring {
		if req.RecurrenceType == nil {
			return nil, fmt.Errorf("%w: recurrence type is required for recurring blocks", ErrInvalidInput)
		}
		t := domain.RecurrenceType(*req.RecurrenceType)
		if !domain.IsValidRecurrenceType(t) {
			return nil, fmt.Errorf("%w: unknown recurrence type %q", ErrInvalidInput, *req.RecurrenceType)
		}
		if t == domain.RecurrenceWeekly && len(req.RecurrenceDays) == 0 {
			return nil, fmt.Errorf("%w: weekly recurrence requires recurrence days", ErrInvalidInput)
		}
		for _, d := range req.RecurrenceDays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
			}
		}
		recurrenceType = &t
	}

	if _, err := s.professionalRepo.GetByID(ctx, salonID, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("CreateTimeBlock: professional=%d not found in salon=%d", req.ProfessionalID, salonID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("CreateTimeBlock: failed to fetch professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: CreateTimeBlock - repository error: %v", ErrInternal, err)
	}

	block := &domain.TimeBlock{
		SalonID:           salonID,
		ProfessionalID:    req.ProfessionalID,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		IsRecurring:       req.IsRecurring,
		RecurrenceType:    recurrenceType,
		RecurrenceDays:    req.RecurrenceDays,
		RecurrenceEndDate: req.RecurrenceEndDate,
		Reason:            req.Reason,
	}

	created, err := s.timeBlockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateTimeBlock: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: CreateTimeBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeBlock: successfully created block id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainTimeBlock(created), nil
}

// ListTimeBlocks получает блокировки салона, опционально по одному мастеру
func (s *Service) ListTimeBlocks(ctx context.Context, salonID int64, professionalID *int64) (*models.TimeBlockListResponse, error) {
	s.logger.Info("ListTimeBlocks: fetching blocks for salon=%d", salonID)

	var blocks []domain.TimeBlock
	var err error

	if professionalID != nil {
		blocks, err = s.timeBlockRepo.ListByProfessional(ctx, salonID, *professionalID)
	} else {
		blocks, err = s.timeBlockRepo.ListBySalon(ctx, salonID)
	}

	if err != nil {
		s.logger.Error("ListTimeBlocks: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListTimeBlocks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTimeBlocks: successfully fetched %d blocks for salon=%d", len(blocks), salonID)
	return models.FromDomainTimeBlockList(blocks), nil
}

// DeleteTimeBlock удаляет блокировку времени
func (s *Service) DeleteTimeBlock(ctx context.Context, salonID, id int64) error {
	s.logger.Info("DeleteTimeBlock: deleting block id=%d for salon=%d", id, salonID)

	if err := s.timeBlockRepo.Delete(ctx, salonID, id); err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("DeleteTimeBlock: block id=%d not found", id)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("DeleteTimeBlock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTimeBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeBlock: successfully deleted block id=%d", id)
	return nil
}

// validateDay проверяет одну строку графика работы
func validateDay(day models.WorkingHoursDay) error {
	if day.Weekday < 0 || day.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(day.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, day.StartTime)
	}
	end, err := types.NewTimeStringFromString(day.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, day.EndTime)
	}

	if day.IsOpen && !start.IsBefore(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
	}

	return nil
}
