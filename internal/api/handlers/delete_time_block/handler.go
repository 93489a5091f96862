package delete_time_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/schedule"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidBlockID = "некорректный ID блокировки"
	msgNotFound       = "блокировка не найдена"
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

// Handle DELETE /api/v1/salons/{salonId}/time-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/time-blocks/{id} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	blockIDStr := vars["blockId"]
	blockID, err := strconv.ParseInt(blockIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/time-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteTimeBlock(r.Context(), salonID, blockID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /salons/{id}/time-blocks/{id} - Time block not found: salon_id=%d, block_id=%d",
				salonID, blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /salons/{id}/time-blocks/{id} - Failed to delete time block: salon_id=%d, block_id=%d, error=%v",
				salonID, blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{id}/time-blocks/{id} - Time block deleted successfully: salon_id=%d, block_id=%d",
		salonID, blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
