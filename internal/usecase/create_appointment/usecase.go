package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	clientRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/client"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// UseCase use case для создания визита
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	clientRepo       ClientRepository
	workingHoursRepo WorkingHoursRepository
	timeBlockRepo    TimeBlockRepository
	logRepo          LogRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	clientRepo ClientRepository,
	workingHoursRepo WorkingHoursRepository,
	timeBlockRepo TimeBlockRepository,
	logRepo LogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
		workingHoursRepo: workingHoursRepo,
		timeBlockRepo:    timeBlockRepo,
		logRepo:          logRepo,
		logger:           logger,
	}
}

// Execute выполняет use case создания визита.
//
// Сумма и время окончания выводятся из зафиксированных цен и длительностей
// услуг на момент записи. Запись визита и его строк выполняется
// последовательными операциями без общей транзакции: сбой на строке услуги
// оставляет визит созданным с частичным набором строк.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: salon=%d, professional=%d, start=%s, services=%d",
		req.SalonID, req.ProfessionalID, req.StartAt.Format(time.RFC3339), len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	prof, err := uc.professionalRepo.GetByID(ctx, req.SalonID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !prof.IsActive {
		uc.logger.Warn("CreateAppointment: professional=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 3. Проверяем клиента, если указан
	if req.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, req.SalonID, *req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	// 4. Получаем услуги и фиксируем цены и длительности
	services, err := uc.serviceRepo.GetByIDs(ctx, req.SalonID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(req.ServiceIDs) {
		uc.logger.Warn("CreateAppointment: %d of %d services not found in salon=%d",
			len(req.ServiceIDs)-len(services), len(req.ServiceIDs), req.SalonID)
		return nil, ErrServiceNotFound
	}

	var totalAmount float64
	var totalDuration int
	for _, svc := range services {
		if !svc.IsActive {
			uc.logger.Warn("CreateAppointment: service=%d is inactive", svc.ID)
			return nil, ErrServiceInactive
		}
		totalAmount += svc.Price
		totalDuration += svc.DurationMinutes
	}

	endAt := req.StartAt.Add(time.Duration(totalDuration) * time.Minute)

	// 5. Проверяем доступность времени мастера
	if err := uc.checkAvailability(ctx, req, endAt, totalDuration); err != nil {
		return nil, err
	}

	// 6. Создаем визит
	appointment := &domain.Appointment{
		SalonID:        req.SalonID,
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		StartAt:        req.StartAt,
		EndAt:          endAt,
		Status:         domain.StatusConfirmed,
		TotalAmount:    totalAmount,
		Notes:          req.Notes,
	}

	created, err := uc.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to insert appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	// 7. Создаем строки услуг
	lines := make([]ServiceLine, 0, len(services))
	for _, svc := range services {
		item := &domain.AppointmentService{
			AppointmentID:   created.ID,
			ServiceID:       svc.ID,
			PriceCharged:    svc.Price,
			DurationMinutes: svc.DurationMinutes,
		}
		inserted, err := uc.appointmentRepo.AddService(ctx, item)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to insert service line service=%d for appointment=%d: %v",
				svc.ID, created.ID, err)
			return nil, fmt.Errorf("%w: failed to create service line: %v", ErrInternal, err)
		}
		lines = append(lines, ServiceLine{
			ID:              inserted.ID,
			ServiceID:       inserted.ServiceID,
			PriceCharged:    inserted.PriceCharged,
			DurationMinutes: inserted.DurationMinutes,
		})
	}

	// 8. Журналируем создание. Ошибка журнала не отменяет визит.
	uc.appendLog(ctx, created, req.UserID, req.ServiceIDs)

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, total=%.2f, end=%s",
		created.ID, created.TotalAmount, created.EndAt.Format(time.RFC3339))

	return &Response{
		ID:             created.ID,
		SalonID:        created.SalonID,
		ProfessionalID: created.ProfessionalID,
		ClientID:       created.ClientID,
		StartAt:        created.StartAt,
		EndAt:          created.EndAt,
		Status:         string(created.Status),
		TotalAmount:    created.TotalAmount,
		Services:       lines,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// checkAvailability проверяет, что визит попадает в рабочее окно салона и
// не пересекается с блокировками и подтвержденными визитами мастера
func (uc *UseCase) checkAvailability(ctx context.Context, req *Request, endAt time.Time, durationMinutes int) error {
	hours, err := uc.workingHoursRepo.ListBySalon(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	window := domain.ResolveWorkingWindow(hours, req.StartAt)
	if window == nil {
		uc.logger.Warn("CreateAppointment: salon=%d is closed on %s", req.SalonID, req.StartAt.Format(domain.DateFormat))
		return ErrSalonClosed
	}

	startTime := types.NewTimeString(req.StartAt)
	endTime := types.NewTimeString(endAt)
	if startTime.IsBefore(window.Start) || endTime.IsAfter(window.End) {
		uc.logger.Warn("CreateAppointment: interval %s-%s is outside working window %s-%s",
			startTime, endTime, window.Start, window.End)
		return ErrSalonClosed
	}

	blocks, err := uc.timeBlockRepo.ListByProfessional(ctx, req.SalonID, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get time blocks: %v", err)
		return fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}
	if domain.IsSlotBlocked(blocks, req.ProfessionalID, req.StartAt, startTime, durationMinutes) {
		uc.logger.Warn("CreateAppointment: interval is blocked for professional=%d", req.ProfessionalID)
		return ErrSlotUnavailable
	}

	appointments, err := uc.appointmentRepo.ListConfirmedByProfessionalOnDate(ctx, req.SalonID, req.ProfessionalID, req.StartAt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	for _, other := range appointments {
		// Строгое пересечение: граничащие интервалы не конфликтуют
		if req.StartAt.Before(other.EndAt) && endAt.After(other.StartAt) {
			uc.logger.Warn("CreateAppointment: interval overlaps appointment id=%d", other.ID)
			return ErrSlotUnavailable
		}
	}

	return nil
}

// appendLog дописывает запись журнала о создании визита
func (uc *UseCase) appendLog(ctx context.Context, appointment *domain.Appointment, userID *int64, serviceIDs []int64) {
	change := domain.CreatedChange{
		ProfessionalID: appointment.ProfessionalID,
		ClientID:       appointment.ClientID,
		StartAt:        appointment.StartAt,
		EndAt:          appointment.EndAt,
		TotalAmount:    appointment.TotalAmount,
		ServiceIDs:     serviceIDs,
	}

	_, err := uc.logRepo.Create(ctx, &domain.AppointmentLog{
		SalonID:       appointment.SalonID,
		AppointmentID: appointment.ID,
		UserID:        userID,
		Action:        change.Action(),
		Changes:       change.Changes(),
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to write created log for appointment=%d: %v", appointment.ID, err)
	}
}
