package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	appointmentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointment"
	serviceRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/service"
	"github.com/nkosach/SLN-SalonService/internal/service/appointments/models"
)

// Service сервис для работы с визитами
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	logRepo         LogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	logRepo LogRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		logRepo:         logRepo,
		logger:          logger,
	}
}

// GetByID получает визит по ID вместе со строками услуг
func (s *Service) GetByID(ctx context.Context, salonID, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for salon=%d", id, salonID)

	appointment, err := s.appointmentRepo.GetByID(ctx, salonID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.appointmentRepo.ListServices(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch service lines for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d with %d service lines", id, len(items))
	return models.FromDomainAppointment(appointment, items), nil
}

// ListBySalon получает визиты салона с гибкой фильтрацией.
// Поддерживает фильтрацию по мастеру, клиенту, периоду и статусу.
func (s *Service) ListBySalon(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListBySalon: fetching appointments for salon=%d", req.SalonID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBySalon: invalid filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBySalon: successfully fetched %d appointments for salon=%d", len(appointments), req.SalonID)
	return models.FromDomainAppointmentList(appointments), nil
}

// AddService добавляет услугу к подтвержденному визиту и пересчитывает
// производные поля: сумма и время окончания выводятся заново из полного
// набора строк, а не инкрементально.
//
// Последовательность чтение-пересчет-запись не атомарна: параллельные
// изменения одного визита могут перезаписать друг друга.
func (s *Service) AddService(ctx context.Context, salonID, appointmentID int64, req *models.AddServiceRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("AddService: adding service=%d to appointment=%d, salon=%d", req.ServiceID, appointmentID, salonID)

	appointment, err := s.getModifiable(ctx, salonID, appointmentID, "AddService")
	if err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.GetByID(ctx, salonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("AddService: service=%d not found in salon=%d", req.ServiceID, salonID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("AddService: failed to fetch service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: AddService - repository error: %v", ErrInternal, err)
	}

	if !svc.IsActive {
		s.logger.Warn("AddService: service=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// Цена и длительность фиксируются на момент добавления
	line := &domain.AppointmentService{
		AppointmentID:   appointmentID,
		ServiceID:       svc.ID,
		PriceCharged:    svc.Price,
		DurationMinutes: svc.DurationMinutes,
	}

	if _, err := s.appointmentRepo.AddService(ctx, line); err != nil {
		s.logger.Error("AddService: failed to insert service line for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: AddService - repository error: %v", ErrInternal, err)
	}

	items, err := s.recalculateTotals(ctx, appointment, "AddService")
	if err != nil {
		return nil, err
	}

	s.appendLog(ctx, salonID, appointmentID, req.UserID, domain.ServiceAddedChange{
		ServiceID:       line.ServiceID,
		PriceCharged:    line.PriceCharged,
		DurationMinutes: line.DurationMinutes,
		NewTotal:        appointment.TotalAmount,
		NewEndAt:        appointment.EndAt,
	})

	s.logger.Info("AddService: successfully added service=%d to appointment=%d, new total=%.2f",
		req.ServiceID, appointmentID, appointment.TotalAmount)
	return models.FromDomainAppointment(appointment, items), nil
}

// RemoveService удаляет строку услуги визита и пересчитывает производные поля.
// Итоговая сумма не опускается ниже нуля.
func (s *Service) RemoveService(ctx context.Context, salonID, appointmentID int64, req *models.RemoveServiceRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("RemoveService: removing line=%d from appointment=%d, salon=%d", req.LineID, appointmentID, salonID)

	appointment, err := s.getModifiable(ctx, salonID, appointmentID, "RemoveService")
	if err != nil {
		return nil, err
	}

	// Запоминаем строку для журнала до удаления
	items, err := s.appointmentRepo.ListServices(ctx, appointmentID)
	if err != nil {
		s.logger.Error("RemoveService: failed to fetch service lines for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: RemoveService - repository error: %v", ErrInternal, err)
	}

	var removed *domain.AppointmentService
	for i := range items {
		if items[i].ID == req.LineID {
			removed = &items[i]
			break
		}
	}
	if removed == nil {
		s.logger.Warn("RemoveService: line=%d not found in appointment=%d", req.LineID, appointmentID)
		return nil, ErrServiceLineNotFound
	}

	if err := s.appointmentRepo.RemoveService(ctx, appointmentID, req.LineID); err != nil {
		if errors.Is(err, appointmentRepo.ErrServiceLineNotFound) {
			s.logger.Warn("RemoveService: line=%d not found during delete", req.LineID)
			return nil, ErrServiceLineNotFound
		}
		s.logger.Error("RemoveService: failed to delete line=%d: %v", req.LineID, err)
		return nil, fmt.Errorf("%w: RemoveService - repository error: %v", ErrInternal, err)
	}

	remaining, err := s.recalculateTotals(ctx, appointment, "RemoveService")
	if err != nil {
		return nil, err
	}

	s.appendLog(ctx, salonID, appointmentID, req.UserID, domain.ServiceRemovedChange{
		ServiceID:       removed.ServiceID,
		PriceCharged:    removed.PriceCharged,
		DurationMinutes: removed.DurationMinutes,
		NewTotal:        appointment.TotalAmount,
		NewEndAt:        appointment.EndAt,
	})

	s.logger.Info("RemoveService: successfully removed line=%d from appointment=%d, new total=%.2f",
		req.LineID, appointmentID, appointment.TotalAmount)
	return models.FromDomainAppointment(appointment, remaining), nil
}

// Cancel отменяет подтвержденный визит с указанием причины
func (s *Service) Cancel(ctx context.Context, salonID, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment=%d, salon=%d", appointmentID, salonID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment=%d", appointmentID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, salonID, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.Reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.appendLog(ctx, salonID, appointmentID, req.UserID, domain.CancelledChange{
		Reason: req.Reason,
	})

	s.logger.Info("Cancel: successfully cancelled appointment=%d", appointmentID)
	return nil
}

// Вспомогательные методы

// getModifiable получает визит и проверяет, что состав услуг менять можно
func (s *Service) getModifiable(ctx context.Context, salonID, appointmentID int64, method string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, salonID, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment=%d not found", method, appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment=%d: %v", method, appointmentID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if !appointment.CanBeModified() {
		s.logger.Warn("%s: appointment=%d is not modifiable, status=%s", method, appointmentID, appointment.Status)
		return nil, ErrNotModifiable
	}

	return appointment, nil
}

// recalculateTotals перечитывает строки услуг и записывает производные поля визита
func (s *Service) recalculateTotals(ctx context.Context, appointment *domain.Appointment, method string) ([]domain.AppointmentService, error) {
	items, err := s.appointmentRepo.ListServices(ctx, appointment.ID)
	if err != nil {
		s.logger.Error("%s: failed to refetch service lines for appointment=%d: %v", method, appointment.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	newTotal := domain.ServicesTotal(items)
	if newTotal < 0 {
		newTotal = 0
	}
	newEndAt := appointment.StartAt.Add(time.Duration(domain.ServicesDuration(items)) * time.Minute)

	if err := s.appointmentRepo.UpdateTotals(ctx, appointment.ID, newTotal, newEndAt); err != nil {
		s.logger.Error("%s: failed to update totals for appointment=%d: %v", method, appointment.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	appointment.TotalAmount = newTotal
	appointment.EndAt = newEndAt

	return items, nil
}

// appendLog дописывает запись журнала.
// Ошибка записи журнала не прерывает основную операцию.
func (s *Service) appendLog(ctx context.Context, salonID, appointmentID int64, userID *int64, change domain.LogChange) {
	_, err := s.logRepo.Create(ctx, &domain.AppointmentLog{
		SalonID:       salonID,
		AppointmentID: appointmentID,
		UserID:        userID,
		Action:        change.Action(),
		Changes:       change.Changes(),
	})
	if err != nil {
		s.logger.Error("appendLog: failed to write %s log for appointment=%d: %v", change.Action(), appointmentID, err)
	}
}
