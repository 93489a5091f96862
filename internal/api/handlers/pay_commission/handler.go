package pay_commission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/commissions"
)

const (
	msgInvalidSalonID      = "некорректный ID салона"
	msgInvalidCommissionID = "некорректный ID комиссии"
	msgNotFound            = "комиссия не найдена"
	msgAlreadyPaid         = "комиссия уже выплачена"
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

// Handle PATCH /api/v1/salons/{salonId}/commissions/{commissionId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /salons/{id}/commissions/{id}/pay - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	commissionIDStr := vars["commissionId"]
	commissionID, err := strconv.ParseInt(commissionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /salons/{id}/commissions/{id}/pay - Invalid commission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCommissionID)
		return
	}

	result, err := h.service.Pay(r.Context(), salonID, commissionID)
	if err != nil {
		switch {
		case errors.Is(err, commissions.ErrCommissionNotFound):
			h.logger.Warn("PATCH /salons/{id}/commissions/{id}/pay - Commission not found: salon_id=%d, commission_id=%d",
				salonID, commissionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, commissions.ErrAlreadyPaid):
			h.logger.Warn("PATCH /salons/{id}/commissions/{id}/pay - Commission already paid: commission_id=%d", commissionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		default:
			h.logger.Error("PATCH /salons/{id}/commissions/{id}/pay - Failed to pay commission: commission_id=%d, error=%v",
				commissionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /salons/{id}/commissions/{id}/pay - Commission paid successfully: salon_id=%d, commission_id=%d, amount=%.2f",
		salonID, commissionID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
