package create_time_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/service/schedule"
	"github.com/nkosach/SLN-SalonService/internal/service/schedule/models"
)

const (
	msgInvalidSalonID       = "некорректный ID салона"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgProfessionalNotFound = "мастер не найден"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgInvalidInput         = "некорректные данные запроса"
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

// Handle POST /api/v1/salons/{salonId}/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/time-blocks - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req models.CreateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateTimeBlock(r.Context(), salonID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("POST /salons/{id}/time-blocks - Professional not found: salon_id=%d, professional_id=%d",
				salonID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /salons/{id}/time-blocks - Invalid time range: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/time-blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{id}/time-blocks - Failed to create time block: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/time-blocks - Time block created successfully: block_id=%d, salon_id=%d, professional_id=%d",
		result.ID, salonID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
