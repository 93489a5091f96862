package complete_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotComplete возвращается, когда визит нельзя завершить
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrProductNotFound возвращается, когда проданный товар не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidInstallments возвращается при недопустимом числе платежей
	ErrInvalidInstallments = errors.New("invalid installments count")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
