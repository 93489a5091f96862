package create_appointment

import (
	"time"
)

// Request модель запроса на создание визита
type Request struct {
	SalonID        int64      // ID салона
	ProfessionalID int64      // ID мастера
	ClientID       *int64     // ID клиента (опционально, walk-in без карточки)
	UserID         *int64     // ID пользователя-инициатора для журнала
	StartAt        time.Time  // Время начала визита
	ServiceIDs     []int64    // Услуги визита, минимум одна
	Notes          *string    // Заметки (опционально)
}

// ServiceLine строка услуги созданного визита
type ServiceLine struct {
	ID              int64   // ID строки
	ServiceID       int64   // ID услуги каталога
	PriceCharged    float64 // Зафиксированная цена
	DurationMinutes int     // Зафиксированная длительность
}

// Response модель ответа с созданным визитом
type Response struct {
	ID             int64
	SalonID        int64
	ProfessionalID int64
	ClientID       *int64

	StartAt time.Time
	EndAt   time.Time

	Status      string
	TotalAmount float64

	Services []ServiceLine

	CreatedAt time.Time
}
