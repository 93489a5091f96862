package subscriptions

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда у салона нет подписки
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
