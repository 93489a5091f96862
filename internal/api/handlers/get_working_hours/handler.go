package get_working_hours

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/working-hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/working-hours - Failed to get working hours: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/working-hours - Working hours retrieved successfully: salon_id=%d, days=%d",
		salonID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
