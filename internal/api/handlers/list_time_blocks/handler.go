package list_time_blocks

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
)

const (
	msgInvalidSalonID        = "некорректный ID салона"
	msgInvalidProfessionalID = "некорректный ID мастера"
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

// Handle GET /api/v1/salons/{salonId}/time-blocks
// Query params: professionalId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/time-blocks - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var professionalID *int64
	if professionalIDStr := r.URL.Query().Get("professionalId"); professionalIDStr != "" {
		id, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/time-blocks - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		professionalID = &id
	}

	result, err := h.service.ListTimeBlocks(r.Context(), salonID, professionalID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/time-blocks - Failed to list time blocks: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/time-blocks - Time blocks retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
