package add_appointment_service

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgAppointmentNotFound  = "визит не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга неактивна"
	msgNotModifiable        = "визит нельзя изменить в текущем статусе"
	msgInvalidInput         = "некорректные данные запроса"
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

// Handle POST /api/v1/salons/{salonId}/appointments/{appointmentId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	appointmentIDStr := vars["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = &userID

	result, err := h.service.AddService(r.Context(), salonID, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, appointments.ErrServiceInactive):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, appointments.ErrNotModifiable):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Appointment not modifiable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotModifiable)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{id}/appointments/{id}/services - Failed to add service: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/appointments/{id}/services - Service added successfully: appointment_id=%d, service_id=%d",
		appointmentID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
