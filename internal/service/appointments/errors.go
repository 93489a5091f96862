package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге салона
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceLineNotFound возвращается, когда строка услуги визита не найдена
	ErrServiceLineNotFound = errors.New("appointment service line not found")

	// ErrNotModifiable возвращается, когда состав услуг визита менять нельзя
	ErrNotModifiable = errors.New("appointment cannot be modified")

	// ErrCannotCancel возвращается, когда визит не может быть отменен
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrServiceInactive возвращается при попытке добавить неактивную услугу
	ErrServiceInactive = errors.New("service is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
