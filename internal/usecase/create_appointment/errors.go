package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrProfessionalInactive возвращается, когда мастер деактивирован
	ErrProfessionalInactive = errors.New("professional is inactive")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInactive возвращается при попытке записать неактивную услугу
	ErrServiceInactive = errors.New("service is inactive")

	// ErrSalonClosed возвращается, когда салон закрыт в указанное время
	ErrSalonClosed = errors.New("salon is closed at this time")

	// ErrSlotUnavailable возвращается, когда время мастера занято
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
