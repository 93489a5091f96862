package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с биллинг-провайдером подписок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента биллинга
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSubscription получает подписку салона
func (c *Client) GetSubscription(ctx context.Context, salonID int64) (*Subscription, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/subscription", c.baseURL, salonID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid salon ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrSubscriptionNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var subscription Subscription
	if err := json.NewDecoder(resp.Body).Decode(&subscription); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &subscription, nil
}

// GetSubscriptionWithGracefulDegradation получает подписку салона с graceful degradation
// При недоступности биллинга возвращает ErrServiceDegraded, что позволяет
// сервису применять лимиты базового плана вместо отказа в обслуживании
func (c *Client) GetSubscriptionWithGracefulDegradation(ctx context.Context, salonID int64) (*Subscription, error) {
	c.log.Info("Fetching subscription for salon_id=%d", salonID)

	subscription, err := c.GetSubscription(ctx, salonID)
	if err != nil {
		// Отсутствие подписки - бизнес-ошибка, пробрасываем дальше
		if err == ErrSubscriptionNotFound {
			c.log.Info("No subscription found for salon_id=%d", salonID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("Billing unavailable, applying graceful degradation for salon_id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: salon_id=%d, error=%v", ErrServiceDegraded, salonID, err)
	}

	c.log.Info("Successfully fetched subscription for salon_id=%d, plan=%s", salonID, subscription.PlanCode)
	return subscription, nil
}
