package complete_appointment

import (
	"time"
)

// ProductSale проданный при визите товар
type ProductSale struct {
	ProductID int64 // ID товара
	Quantity  int   // Количество, больше нуля
}

// Request модель запроса на завершение визита
type Request struct {
	SalonID       int64         // ID салона
	AppointmentID int64         // ID визита
	UserID        *int64        // ID пользователя-инициатора для журнала
	PaymentMethod string        // cash | card | pix
	Installments  int           // Число платежей, 0 = один платеж
	Products      []ProductSale // Проданные товары (опционально)
}

// Response модель ответа с результатами завершения
type Response struct {
	AppointmentID int64
	CompletedAt   time.Time

	TotalAmount   float64
	PaymentMethod string
	Installments  int

	// Разложение комиссии мастера
	CommissionGross    float64
	CommissionCardFee  float64
	CommissionAdminFee float64
	CommissionNet      float64

	ProductsSold int
}
