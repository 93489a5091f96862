package billing

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда у салона нет подписки
	ErrSubscriptionNotFound = errors.New("salon has no subscription")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("billing client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("billing client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что биллинг недоступен и следует применять лимиты базового плана
	ErrServiceDegraded = errors.New("billing unavailable: graceful degradation applied")
)
