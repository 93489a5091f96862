package list_commissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/commissions"
	"github.com/nkosach/SLN-SalonService/internal/service/commissions/models"
)

const (
	msgInvalidSalonID        = "некорректный ID салона"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidStatus         = "некорректный статус комиссии"
)

type Handler struct {
	service CommissionService
	logger  Logger
}

func NewHandler(service CommissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/commissions
// Query params: professionalId, status (pending | paid), оба опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/commissions - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	req := &models.ListCommissionsRequest{SalonID: salonID}

	query := r.URL.Query()

	if professionalIDStr := query.Get("professionalId"); professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/commissions - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &professionalID
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commissions.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/commissions - Invalid status filter: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /salons/{id}/commissions - Failed to list commissions: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/commissions - Commissions retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Commissions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
