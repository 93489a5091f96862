package create_credit_movement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/credits"
	"github.com/nkosach/SLN-SalonService/internal/service/credits/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgClientNotFound     = "клиент не найден"
	msgInvalidType        = "некорректный тип движения, ожидается credit или debit"
	msgInvalidAmount      = "сумма движения должна быть положительной"
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

// Handle POST /api/v1/salons/{salonId}/clients/{clientId}/credit-movements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	clientIDStr := vars["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.CreateMovementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddMovement(r.Context(), salonID, clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, credits.ErrClientNotFound):
			h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Client not found: salon_id=%d, client_id=%d",
				salonID, clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, credits.ErrInvalidMovementType):
			h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Invalid movement type: %s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, credits.ErrInvalidAmount):
			h.logger.Warn("POST /salons/{id}/clients/{id}/credit-movements - Invalid amount: %.2f", req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /salons/{id}/clients/{id}/credit-movements - Failed to add movement: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/clients/{id}/credit-movements - Movement added successfully: movement_id=%d, client_id=%d, type=%s, amount=%.2f",
		result.ID, clientID, req.Type, req.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
