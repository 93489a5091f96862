package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	clientRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/client"
	"github.com/nkosach/SLN-SalonService/internal/service/credits/models"
)

// Service сервис кредитного журнала клиентов
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса кредитов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// AddMovement дописывает движение в кредитный журнал клиента. Журнал только
// дописывается: корректировки оформляются новыми движениями, а не правкой
// старых. Кэшированный баланс клиента здесь не трогается, его синхронизация
// выполняется внешним механизмом.
func (s *Service) AddMovement(ctx context.Context, salonID, clientID int64, req *models.CreateMovementRequest) (*models.MovementResponse, error) {
	s.logger.Info("AddMovement: adding %s movement for client=%d, salon=%d", req.Type, clientID, salonID)

	movementType := domain.CreditMovementType(req.Type)
	if !domain.IsValidMovementType(movementType) {
		s.logger.Warn("AddMovement: invalid movement type=%s", req.Type)
		return nil, ErrInvalidMovementType
	}

	// Суммы всегда положительные, направление кодируется типом
	if req.Amount <= 0 {
		s.logger.Warn("AddMovement: non-positive amount=%.2f for client=%d", req.Amount, clientID)
		return nil, ErrInvalidAmount
	}

	if _, err := s.clientRepo.GetByID(ctx, salonID, clientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("AddMovement: client=%d not found in salon=%d", clientID, salonID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("AddMovement: failed to fetch client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: AddMovement - repository error: %v", ErrInternal, err)
	}

	movement := &domain.ClientCreditMovement{
		SalonID:     salonID,
		ClientID:    clientID,
		Type:        movementType,
		Amount:      req.Amount,
		Description: req.Description,
	}

	created, err := s.clientRepo.CreateMovement(ctx, movement)
	if err != nil {
		s.logger.Error("AddMovement: failed to insert movement for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: AddMovement - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddMovement: successfully added movement id=%d for client=%d", created.ID, clientID)
	return models.FromDomainMovement(created), nil
}

// GetLedger получает кредитный журнал клиента вместе с кэшированным балансом
// и производной суммой журнала
func (s *Service) GetLedger(ctx context.Context, salonID, clientID int64) (*models.LedgerResponse, error) {
	s.logger.Info("GetLedger: fetching ledger for client=%d, salon=%d", clientID, salonID)

	client, err := s.clientRepo.GetByID(ctx, salonID, clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetLedger: client=%d not found in salon=%d", clientID, salonID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetLedger: failed to fetch client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetLedger - repository error: %v", ErrInternal, err)
	}

	movements, err := s.clientRepo.ListMovements(ctx, salonID, clientID)
	if err != nil {
		s.logger.Error("GetLedger: failed to fetch movements for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetLedger - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLedger: successfully fetched %d movements for client=%d", len(movements), clientID)
	return models.FromDomainLedger(client, movements), nil
}
