package get_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/subscriptions"
)

const (
	msgInvalidSalonID       = "некорректный ID салона"
	msgSubscriptionNotFound = "подписка не найдена"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/subscription - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetSubscription(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("GET /salons/{id}/subscription - Subscription not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		default:
			h.logger.Error("GET /salons/{id}/subscription - Failed to get subscription: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/subscription - Subscription retrieved successfully: salon_id=%d, plan=%s, degraded=%t",
		salonID, result.PlanCode, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
