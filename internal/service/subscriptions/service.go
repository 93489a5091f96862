package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/integrations/billing"
	"github.com/nkosach/SLN-SalonService/internal/service/subscriptions/models"
)

// Лимиты базового плана при недоступности биллинга
const (
	fallbackPlanCode         = "basic"
	fallbackMaxProfessionals = 3
)

// Service сервис подписок салонов
type Service struct {
	billingClient    BillingClient
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(billingClient BillingClient, professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		billingClient:    billingClient,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetSubscription получает подписку салона вместе с текущим использованием
// лимита мастеров. При недоступности биллинга подставляются лимиты базового
// плана, ответ помечается как degraded.
func (s *Service) GetSubscription(ctx context.Context, salonID int64) (*models.SubscriptionResponse, error) {
	s.logger.Info("GetSubscription: fetching subscription for salon=%d", salonID)

	active, err := s.professionalRepo.CountActiveBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("GetSubscription: failed to count professionals for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSubscription - repository error: %v", ErrInternal, err)
	}

	subscription, err := s.billingClient.GetSubscriptionWithGracefulDegradation(ctx, salonID)
	if err != nil {
		if errors.Is(err, billing.ErrSubscriptionNotFound) {
			s.logger.Warn("GetSubscription: no subscription for salon=%d", salonID)
			return nil, ErrSubscriptionNotFound
		}
		if errors.Is(err, billing.ErrServiceDegraded) {
			s.logger.Warn("GetSubscription: billing degraded for salon=%d, using fallback plan", salonID)
			return &models.SubscriptionResponse{
				SalonID:             salonID,
				PlanCode:            fallbackPlanCode,
				Status:              "unknown",
				MaxProfessionals:    fallbackMaxProfessionals,
				ActiveProfessionals: active,
				Degraded:            true,
			}, nil
		}
		s.logger.Error("GetSubscription: billing client error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSubscription - billing error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSubscription: successfully fetched plan=%s for salon=%d", subscription.PlanCode, salonID)
	return models.FromBillingSubscription(subscription, active), nil
}
