package billing

// Subscription модель подписки салона из биллинга
type Subscription struct {
	SalonID          int64  `json:"salon_id"`
	PlanCode         string `json:"plan_code"`
	Status           string `json:"status"`
	MaxProfessionals int    `json:"max_professionals"`
	ExpiresAt        string `json:"expires_at"`
}

// ErrorResponse модель ошибки от биллинга
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
