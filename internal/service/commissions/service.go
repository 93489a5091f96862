package commissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	commissionRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/commission"
	"github.com/nkosach/SLN-SalonService/internal/service/commissions/models"
)

// Service сервис для работы с комиссиями мастеров
type Service struct {
	commissionRepo CommissionRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса комиссий
func NewService(commissionRepo CommissionRepository, logger Logger) *Service {
	return &Service{
		commissionRepo: commissionRepo,
		logger:         logger,
	}
}

// List получает комиссии салона с фильтрацией по мастеру и статусу
func (s *Service) List(ctx context.Context, req *models.ListCommissionsRequest) (*models.CommissionListResponse, error) {
	s.logger.Info("List: fetching commissions for salon=%d", req.SalonID)

	var domainStatus *domain.CommissionStatus
	if req.Status != nil {
		status, err := models.ToDomainCommissionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for salon=%d", *req.Status, req.SalonID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	commissions, err := s.commissionRepo.ListBySalon(ctx, req.SalonID, req.ProfessionalID, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d commissions for salon=%d", len(commissions), req.SalonID)
	return models.FromDomainCommissionList(commissions), nil
}

// Pay отмечает комиссию выплаченной.
// Повторная выплата уже выплаченной комиссии запрещена.
func (s *Service) Pay(ctx context.Context, salonID, id int64) (*models.CommissionResponse, error) {
	s.logger.Info("Pay: paying commission id=%d for salon=%d", id, salonID)

	commission, err := s.commissionRepo.GetByID(ctx, salonID, id)
	if err != nil {
		if errors.Is(err, commissionRepo.ErrCommissionNotFound) {
			s.logger.Warn("Pay: commission id=%d not found", id)
			return nil, ErrCommissionNotFound
		}
		s.logger.Error("Pay: repository error for commission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Pay - repository error: %v", ErrInternal, err)
	}

	if !commission.CanBePaid() {
		s.logger.Warn("Pay: commission id=%d already paid", id)
		return nil, ErrAlreadyPaid
	}

	if err := s.commissionRepo.MarkPaid(ctx, salonID, id); err != nil {
		if errors.Is(err, commissionRepo.ErrCommissionNotFound) {
			s.logger.Warn("Pay: commission id=%d not found during update", id)
			return nil, ErrCommissionNotFound
		}
		s.logger.Error("Pay: repository error for commission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Pay - repository error: %v", ErrInternal, err)
	}

	paid, err := s.commissionRepo.GetByID(ctx, salonID, id)
	if err != nil {
		s.logger.Error("Pay: failed to refetch commission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Pay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Pay: successfully paid commission id=%d, amount=%.2f", id, paid.Amount)
	return models.FromDomainCommission(paid), nil
}
