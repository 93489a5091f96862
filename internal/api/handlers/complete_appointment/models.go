package complete_appointment

import (
	"time"

	completeAppointment "github.com/nkosach/SLN-SalonService/internal/usecase/complete_appointment"
)

// ProductSaleRequest проданный при визите товар
type ProductSaleRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CompleteAppointmentRequest HTTP request model
type CompleteAppointmentRequest struct {
	PaymentMethod string               `json:"paymentMethod"` // cash | card | pix
	Installments  int                  `json:"installments,omitempty"`
	Products      []ProductSaleRequest `json:"products,omitempty"`
}

// CompleteAppointmentResponse HTTP response model
type CompleteAppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	CompletedAt   string `json:"completedAt"`

	TotalAmount   float64 `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
	Installments  int     `json:"installments"`

	CommissionGross    float64 `json:"commissionGross"`
	CommissionCardFee  float64 `json:"commissionCardFee"`
	CommissionAdminFee float64 `json:"commissionAdminFee"`
	CommissionNet      float64 `json:"commissionNet"`

	ProductsSold int `json:"productsSold"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteAppointmentRequest) ToUseCaseRequest(salonID, appointmentID int64, userID *int64) *completeAppointment.Request {
	products := make([]completeAppointment.ProductSale, len(r.Products))
	for i, sale := range r.Products {
		products[i] = completeAppointment.ProductSale{
			ProductID: sale.ProductID,
			Quantity:  sale.Quantity,
		}
	}

	return &completeAppointment.Request{
		SalonID:       salonID,
		AppointmentID: appointmentID,
		UserID:        userID,
		PaymentMethod: r.PaymentMethod,
		Installments:  r.Installments,
		Products:      products,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeAppointment.Response) *CompleteAppointmentResponse {
	return &CompleteAppointmentResponse{
		AppointmentID:      resp.AppointmentID,
		CompletedAt:        resp.CompletedAt.Format(time.RFC3339),
		TotalAmount:        resp.TotalAmount,
		PaymentMethod:      resp.PaymentMethod,
		Installments:       resp.Installments,
		CommissionGross:    resp.CommissionGross,
		CommissionCardFee:  resp.CommissionCardFee,
		CommissionAdminFee: resp.CommissionAdminFee,
		CommissionNet:      resp.CommissionNet,
		ProductsSold:       resp.ProductsSold,
	}
}
