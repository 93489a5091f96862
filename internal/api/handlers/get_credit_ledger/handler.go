package get_credit_ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/credits"
)

const (
	msgInvalidSalonID  = "некорректный ID салона"
	msgInvalidClientID = "некорректный ID клиента"
	msgClientNotFound  = "клиент не найден"
)

type Handler struct {
	service CreditService
	logger  Logger
}

func NewHandler(service CreditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/clients/{clientId}/credit-ledger
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/clients/{id}/credit-ledger - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	clientIDStr := vars["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/clients/{id}/credit-ledger - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetLedger(r.Context(), salonID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, credits.ErrClientNotFound):
			h.logger.Warn("GET /salons/{id}/clients/{id}/credit-ledger - Client not found: salon_id=%d, client_id=%d",
				salonID, clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /salons/{id}/clients/{id}/credit-ledger - Failed to get ledger: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/clients/{id}/credit-ledger - Ledger retrieved successfully: client_id=%d, movements=%d",
		clientID, len(result.Movements))
	handlers.RespondJSON(w, http.StatusOK, result)
}
