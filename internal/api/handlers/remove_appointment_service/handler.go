package remove_appointment_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/api/middleware"
	"github.com/nkosach/SLN-SalonService/internal/service/appointments"
	"github.com/nkosach/SLN-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidSalonID       = "некорректный ID салона"
	msgInvalidAppointmentID = "некорректный ID визита"
	msgInvalidLineID        = "некорректный ID строки услуги"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgAppointmentNotFound  = "визит не найден"
	msgLineNotFound         = "строка услуги не найдена"
	msgNotModifiable        = "визит нельзя изменить в текущем статусе"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/salons/{salonId}/appointments/{appointmentId}/services/{lineId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	appointmentIDStr := vars["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	lineIDStr := vars["lineId"]
	lineID, err := strconv.ParseInt(lineIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Invalid line ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLineID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.RemoveServiceRequest{
		UserID: &userID,
		LineID: lineID,
	}

	result, err := h.service.RemoveService(r.Context(), salonID, appointmentID, req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrServiceLineNotFound):
			h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Line not found: appointment_id=%d, line_id=%d",
				appointmentID, lineID)
			handlers.RespondNotFound(w, msgLineNotFound)

		case errors.Is(err, appointments.ErrNotModifiable):
			h.logger.Warn("DELETE /salons/{id}/appointments/{id}/services/{id} - Appointment not modifiable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotModifiable)

		default:
			h.logger.Error("DELETE /salons/{id}/appointments/{id}/services/{id} - Failed to remove service: appointment_id=%d, line_id=%d, error=%v",
				appointmentID, lineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{id}/appointments/{id}/services/{id} - Service removed successfully: appointment_id=%d, line_id=%d",
		appointmentID, lineID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
