package credits

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidMovementType возвращается при неизвестном типе движения
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidAmount возвращается при неположительной сумме движения
	ErrInvalidAmount = errors.New("movement amount must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
