package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nkosach/SLN-SalonService/internal/api/handlers"
	"github.com/nkosach/SLN-SalonService/internal/api/middleware"
	createAppointment "github.com/nkosach/SLN-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidSalonID       = "некорректный ID салона"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartAt       = "некорректный формат времени начала, ожидается RFC3339"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgProfessionalNotFound = "мастер не найден"
	msgProfessionalInactive = "мастер неактивен"
	msgClientNotFound       = "клиент не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга неактивна"
	msgSalonClosed          = "салон закрыт в выбранное время"
	msgSlotUnavailable      = "выбранный временной слот недоступен"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем salonId из URL
	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(salonID, &userID)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/appointments - Invalid startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /salons/{id}/appointments - Slot unavailable: salon_id=%d, professional_id=%d",
				salonID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /salons/{id}/appointments - Professional not found: salon_id=%d, professional_id=%d",
				salonID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalInactive):
			h.logger.Warn("POST /salons/{id}/appointments - Professional inactive: salon_id=%d, professional_id=%d",
				salonID, req.ProfessionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /salons/{id}/appointments - Client not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/appointments - Service not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /salons/{id}/appointments - Service inactive: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /salons/{id}/appointments - Salon closed: salon_id=%d, start_at=%s",
				salonID, req.StartAt)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/{id}/appointments - Failed to create appointment: salon_id=%d, professional_id=%d, error=%v",
				salonID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /salons/{id}/appointments - Appointment created successfully: appointment_id=%d, salon_id=%d, professional_id=%d",
		result.ID, salonID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
