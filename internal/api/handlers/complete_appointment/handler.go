package complete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/api/middleware"
	completeAppointment "github.com/nkosach/SLN-SalonService/internal/usecase/complete_appointment"
)

const (
	msgInvalidSalonID       = "некорректный ID салона"
	msgInvalidAppointmentID = "некорректный ID визита"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgAppointmentNotFound  = "визит не найден"
	msgCannotComplete       = "визит нельзя завершить в текущем статусе"
	msgProductNotFound      = "товар не найден"
	msgInvalidPaymentMethod = "некорректный способ оплаты"
	msgInvalidInstallments  = "некорректное число платежей"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CompleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CompleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем salonId из URL
	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Извлекаем appointmentId из URL
	appointmentIDStr := vars["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CompleteAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(salonID, appointmentID, &userID))
	if err != nil {
		switch {
		case errors.Is(err, completeAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, completeAppointment.ErrCannotComplete):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Cannot complete: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		case errors.Is(err, completeAppointment.ErrProductNotFound):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Product not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, completeAppointment.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid payment method: %s", req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, completeAppointment.ErrInvalidInstallments):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid installments: %d", req.Installments)
			handlers.RespondBadRequest(w, msgInvalidInstallments)

		case errors.Is(err, completeAppointment.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/appointments/{id}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{id}/appointments/{id}/complete - Failed to complete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /salons/{id}/appointments/{id}/complete - Appointment completed successfully: appointment_id=%d, total=%.2f",
		appointmentID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
