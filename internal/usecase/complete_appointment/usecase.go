package complete_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	appointmentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointment"
	productRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/product"
	"github.com/nkosach/SLN-SalonService/pkg/ptr"
)

// UseCase use case для завершения визита
type UseCase struct {
	appointmentRepo  AppointmentRepository
	salonRepo        SalonRepository
	professionalRepo ProfessionalRepository
	paymentRepo      PaymentRepository
	commissionRepo   CommissionRepository
	cashflowRepo     CashflowRepository
	productRepo      ProductRepository
	logRepo          LogRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	professionalRepo ProfessionalRepository,
	paymentRepo PaymentRepository,
	commissionRepo CommissionRepository,
	cashflowRepo CashflowRepository,
	productRepo ProductRepository,
	logRepo LogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		salonRepo:        salonRepo,
		professionalRepo: professionalRepo,
		paymentRepo:      paymentRepo,
		commissionRepo:   commissionRepo,
		cashflowRepo:     cashflowRepo,
		productRepo:      productRepo,
		logRepo:          logRepo,
		logger:           logger,
	}
}

// Execute выполняет use case завершения визита.
//
// Побочные эффекты записываются последовательно: статус, платеж, комиссия,
// запись дохода, складские списания, журнал. Общей транзакции нет: первая
// ошибка прерывает последовательность, уже выполненные шаги не откатываются.
// Частично завершенный визит разбирается вручную по журналу и логам.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteAppointment: salon=%d, appointment=%d, method=%s",
		req.SalonID, req.AppointmentID, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteAppointment: validation failed: %v", err)
		return nil, err
	}

	installments := req.Installments
	if installments == 0 {
		installments = domain.MinInstallments
	}

	// 2. Получаем визит и проверяем статус
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.SalonID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CompleteAppointment: appointment=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CompleteAppointment: failed to get appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	if !appointment.CanBeCompleted() {
		uc.logger.Warn("CompleteAppointment: appointment=%d cannot be completed, status=%s",
			req.AppointmentID, appointment.Status)
		return nil, ErrCannotComplete
	}

	// 3. Собираем данные для расчета комиссии
	lines, err := uc.appointmentRepo.ListServices(ctx, req.AppointmentID)
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to get service lines: %v", err)
		return nil, fmt.Errorf("%w: failed to get service lines: %v", ErrInternal, err)
	}

	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to get salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	prof, err := uc.professionalRepo.GetByID(ctx, req.SalonID, appointment.ProfessionalID)
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to get professional=%d: %v", appointment.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	rules, err := uc.commissionRepo.GetRulesByProfessional(ctx, req.SalonID, appointment.ProfessionalID)
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to get commission rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get commission rules: %v", ErrInternal, err)
	}

	// Обе комиссии берутся из конфигурации салона независимо от способа оплаты
	breakdown := domain.CalculateCommission(
		lines,
		prof.CommissionPercentDefault,
		rules,
		salon.CardFeePercent(installments),
		salon.AdminFeePercent,
	)

	// Сбор проданных товаров до начала записей, чтобы падать раньше побочных эффектов
	products, productsTotal, err := uc.fetchProducts(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	paymentMethod := domain.PaymentMethod(req.PaymentMethod)

	// Итоговая сумма визита: услуги плюс проданные товары
	finalTotal := appointment.TotalAmount + productsTotal

	// 4. Шаг 1: статус визита и итоговая сумма
	if err := uc.appointmentRepo.Complete(ctx, req.AppointmentID, finalTotal); err != nil {
		uc.logger.Error("CompleteAppointment: failed to set completed status for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to complete appointment: %v", ErrInternal, err)
	}

	// 5. Шаг 2: платеж
	_, err = uc.paymentRepo.Create(ctx, &domain.Payment{
		SalonID:       req.SalonID,
		AppointmentID: req.AppointmentID,
		Method:        paymentMethod,
		Installments:  installments,
		Amount:        finalTotal,
	})
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to create payment for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
	}

	// 6. Шаг 3: комиссия мастера
	_, err = uc.commissionRepo.Create(ctx, &domain.Commission{
		SalonID:        req.SalonID,
		AppointmentID:  req.AppointmentID,
		ProfessionalID: appointment.ProfessionalID,
		GrossAmount:    breakdown.Gross,
		CardFeeAmount:  breakdown.CardFee,
		AdminFeeAmount: breakdown.AdminFee,
		Amount:         breakdown.Net,
		Status:         domain.CommissionPending,
		PaymentMethod:  paymentMethod,
	})
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to create commission for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to create commission: %v", ErrInternal, err)
	}

	// 7. Шаг 4: запись дохода
	_, err = uc.cashflowRepo.Create(ctx, &domain.CashflowEntry{
		SalonID:       req.SalonID,
		Type:          domain.CashflowIncome,
		Amount:        finalTotal,
		Description:   fmt.Sprintf("Appointment #%d", req.AppointmentID),
		AppointmentID: ptr.Ptr(req.AppointmentID),
		PaymentMethod: &paymentMethod,
		EntryDate:     now,
	})
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to create cashflow entry for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to create cashflow entry: %v", ErrInternal, err)
	}

	// 8. Шаг 5: складские списания проданных товаров
	productNames := make([]string, 0, len(products))
	for i, sale := range req.Products {
		product := products[i]

		_, err = uc.productRepo.CreateMovement(ctx, &domain.ProductMovement{
			SalonID:       req.SalonID,
			ProductID:     sale.ProductID,
			Type:          domain.ProductMovementOut,
			Quantity:      sale.Quantity,
			AppointmentID: ptr.Ptr(req.AppointmentID),
		})
		if err != nil {
			uc.logger.Error("CompleteAppointment: failed to create movement for product=%d: %v", sale.ProductID, err)
			return nil, fmt.Errorf("%w: failed to create product movement: %v", ErrInternal, err)
		}

		if err := uc.productRepo.AdjustStock(ctx, req.SalonID, sale.ProductID, -sale.Quantity); err != nil {
			uc.logger.Error("CompleteAppointment: failed to adjust stock for product=%d: %v", sale.ProductID, err)
			return nil, fmt.Errorf("%w: failed to adjust stock: %v", ErrInternal, err)
		}

		productNames = append(productNames, product.Name)
	}

	// 9. Шаг 6: журнал
	change := domain.CompletedChange{
		PaymentMethod:    paymentMethod,
		Installments:     installments,
		Total:            finalTotal,
		CommissionAmount: breakdown.Net,
		ProductNames:     productNames,
	}
	_, err = uc.logRepo.Create(ctx, &domain.AppointmentLog{
		SalonID:       req.SalonID,
		AppointmentID: req.AppointmentID,
		UserID:        req.UserID,
		Action:        change.Action(),
		Changes:       change.Changes(),
	})
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to write completed log for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to write log: %v", ErrInternal, err)
	}

	uc.logger.Info("CompleteAppointment: successfully completed appointment=%d, total=%.2f, commission=%.2f",
		req.AppointmentID, finalTotal, breakdown.Net)

	return &Response{
		AppointmentID:      req.AppointmentID,
		CompletedAt:        now,
		TotalAmount:        finalTotal,
		PaymentMethod:      req.PaymentMethod,
		Installments:       installments,
		CommissionGross:    breakdown.Gross,
		CommissionCardFee:  breakdown.CardFee,
		CommissionAdminFee: breakdown.AdminFee,
		CommissionNet:      breakdown.Net,
		ProductsSold:       len(products),
	}, nil
}

// fetchProducts получает проданные товары и считает их выручку
func (uc *UseCase) fetchProducts(ctx context.Context, req *Request) ([]*domain.Product, float64, error) {
	products := make([]*domain.Product, 0, len(req.Products))
	var total float64

	for _, sale := range req.Products {
		product, err := uc.productRepo.GetByID(ctx, req.SalonID, sale.ProductID)
		if err != nil {
			if errors.Is(err, productRepo.ErrProductNotFound) {
				uc.logger.Warn("CompleteAppointment: product=%d not found in salon=%d", sale.ProductID, req.SalonID)
				return nil, 0, ErrProductNotFound
			}
			uc.logger.Error("CompleteAppointment: failed to get product=%d: %v", sale.ProductID, err)
			return nil, 0, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
		}
		products = append(products, product)
		total += product.Price * float64(sale.Quantity)
	}

	return products, total, nil
}
