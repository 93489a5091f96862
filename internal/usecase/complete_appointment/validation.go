package complete_appointment

import (
	"fmt"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if !domain.IsValidPaymentMethod(domain.PaymentMethod(req.PaymentMethod)) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	if req.Installments != 0 &&
		(req.Installments < domain.MinInstallments || req.Installments > domain.MaxInstallments) {
		return fmt.Errorf("%w: installments must be between %d and %d",
			ErrInvalidInstallments, domain.MinInstallments, domain.MaxInstallments)
	}

	for _, sale := range req.Products {
		if sale.ProductID <= 0 {
			return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
		}
		if sale.Quantity <= 0 {
			return fmt.Errorf("%w: product quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}
