package get_available_slots

import (
	"time"

	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID         int64     // ID салона
	ProfessionalID  int64     // ID мастера
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Требуемая длительность, 0 = длительность по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time // Дата, на которую запрашивались слоты
	SalonID        int64     // ID салона
	ProfessionalID int64     // ID мастера
	Slots          []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
