package complete_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	appointmentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointment"
	productRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/product"
)

// Фейковые зависимости

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	lines       []domain.AppointmentService
	getErr      error

	completedID    *int64
	completedTotal *float64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) ListServices(_ context.Context, _ int64) ([]domain.AppointmentService, error) {
	return f.lines, nil
}

func (f *fakeAppointmentRepo) Complete(_ context.Context, id int64, totalAmount float64) error {
	f.completedID = &id
	f.completedTotal = &totalAmount
	return nil
}

type fakeSalonRepo struct {
	salon *domain.Salon
}

func (f *fakeSalonRepo) GetByID(_ context.Context, _ int64) (*domain.Salon, error) {
	return f.salon, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, _ int64) (*domain.Professional, error) {
	return f.professional, nil
}

type fakePaymentRepo struct {
	created *domain.Payment
	err     error
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = payment
	return payment, nil
}

type fakeCommissionRepo struct {
	rules   map[int64]domain.CommissionRule
	created *domain.Commission
}

func (f *fakeCommissionRepo) Create(_ context.Context, commission *domain.Commission) (*domain.Commission, error) {
	f.created = commission
	return commission, nil
}

func (f *fakeCommissionRepo) GetRulesByProfessional(_ context.Context, _, _ int64) (map[int64]domain.CommissionRule, error) {
	if f.rules == nil {
		return map[int64]domain.CommissionRule{}, nil
	}
	return f.rules, nil
}

type fakeCashflowRepo struct {
	created *domain.CashflowEntry
}

func (f *fakeCashflowRepo) Create(_ context.Context, entry *domain.CashflowEntry) (*domain.CashflowEntry, error) {
	f.created = entry
	return entry, nil
}

type fakeProductRepo struct {
	products map[int64]*domain.Product

	movements   []*domain.ProductMovement
	stockDeltas map[int64]int
}

func (f *fakeProductRepo) GetByID(_ context.Context, _, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, productRepo.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) CreateMovement(_ context.Context, movement *domain.ProductMovement) (*domain.ProductMovement, error) {
	f.movements = append(f.movements, movement)
	return movement, nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, _, id int64, delta int) error {
	if f.stockDeltas == nil {
		f.stockDeltas = make(map[int64]int)
	}
	f.stockDeltas[id] += delta
	return nil
}

type fakeLogRepo struct {
	logs []*domain.AppointmentLog
}

func (f *fakeLogRepo) Create(_ context.Context, log *domain.AppointmentLog) (*domain.AppointmentLog, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Окружение теста: визит на 100 с одной строкой, мастер с дефолтными 40%,
// салон с комиссией эквайринга 5% на 3 платежа и административным сбором 2%
type env struct {
	appointments *fakeAppointmentRepo
	salons       *fakeSalonRepo
	prof         *fakeProfessionalRepo
	payments     *fakePaymentRepo
	commissions  *fakeCommissionRepo
	cashflow     *fakeCashflowRepo
	products     *fakeProductRepo
	logs         *fakeLogRepo
}

func newEnv() *env {
	return &env{
		appointments: &fakeAppointmentRepo{
			appointment: &domain.Appointment{
				ID:             10,
				SalonID:        1,
				ProfessionalID: 2,
				Status:         domain.StatusConfirmed,
				TotalAmount:    100,
			},
			lines: []domain.AppointmentService{
				{ID: 1, AppointmentID: 10, ServiceID: 100, PriceCharged: 100, DurationMinutes: 60},
			},
		},
		salons: &fakeSalonRepo{salon: &domain.Salon{
			ID:                    1,
			AdminFeePercent:       2,
			CardFeesByInstallment: map[int]float64{1: 0, 3: 5},
		}},
		prof: &fakeProfessionalRepo{professional: &domain.Professional{
			ID: 2, SalonID: 1, CommissionPercentDefault: 40, IsActive: true,
		}},
		payments:    &fakePaymentRepo{},
		commissions: &fakeCommissionRepo{},
		cashflow:    &fakeCashflowRepo{},
		products:    &fakeProductRepo{},
		logs:        &fakeLogRepo{},
	}
}

func (e *env) useCase() *UseCase {
	return NewUseCase(
		e.appointments,
		e.salons,
		e.prof,
		e.payments,
		e.commissions,
		e.cashflow,
		e.products,
		e.logs,
		nopLogger{},
	)
}

func TestExecute_CommissionBreakdown(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "card",
		Installments:  3,
	})
	require.NoError(t, err)

	// Без товаров итоговая сумма равна сумме услуг
	assert.InDelta(t, 100.0, resp.TotalAmount, 1e-9)
	require.NotNil(t, e.appointments.completedTotal)
	assert.InDelta(t, 100.0, *e.appointments.completedTotal, 1e-9)

	// 100 по услуге, 40% мастеру, минус 5% эквайринга и 2% администрирования
	assert.InDelta(t, 40.0, resp.CommissionGross, 1e-9)
	assert.InDelta(t, 2.0, resp.CommissionCardFee, 1e-9)
	assert.InDelta(t, 0.8, resp.CommissionAdminFee, 1e-9)
	assert.InDelta(t, 37.2, resp.CommissionNet, 1e-9)

	require.NotNil(t, e.commissions.created)
	assert.Equal(t, domain.CommissionPending, e.commissions.created.Status)
	assert.InDelta(t, 37.2, e.commissions.created.Amount, 1e-9)

	require.NotNil(t, e.payments.created)
	assert.Equal(t, domain.PaymentCard, e.payments.created.Method)
	assert.Equal(t, 3, e.payments.created.Installments)
	assert.InDelta(t, 100.0, e.payments.created.Amount, 1e-9)

	require.NotNil(t, e.cashflow.created)
	assert.Equal(t, domain.CashflowIncome, e.cashflow.created.Type)
	assert.InDelta(t, 100.0, e.cashflow.created.Amount, 1e-9)

	require.Len(t, e.logs.logs, 1)
	assert.Equal(t, domain.LogCompleted, e.logs.logs[0].Action)
}

func TestExecute_CashFeesStillApply(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	// Способ оплаты не отключает сборы: для одного платежа настроено 0%,
	// административный сбор применяется всегда
	assert.Equal(t, 1, resp.Installments)
	assert.InDelta(t, 40.0, resp.CommissionGross, 1e-9)
	assert.InDelta(t, 0.0, resp.CommissionCardFee, 1e-9)
	assert.InDelta(t, 0.8, resp.CommissionAdminFee, 1e-9)
	assert.InDelta(t, 39.2, resp.CommissionNet, 1e-9)
}

func TestExecute_ServiceRuleOverridesDefault(t *testing.T) {
	e := newEnv()
	e.commissions.rules = map[int64]domain.CommissionRule{
		100: {ProfessionalID: 2, ServiceID: 100, Type: domain.CommissionRuleFixed, Value: 25},
	}
	uc := e.useCase()

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.0, resp.CommissionGross, 1e-9)
}

func TestExecute_ProductSaleAddsToCashflowAndStock(t *testing.T) {
	e := newEnv()
	e.products.products = map[int64]*domain.Product{
		7: {ID: 7, SalonID: 1, Name: "Shampoo", Price: 15, StockQuantity: 10},
	}
	uc := e.useCase()

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "card",
		Installments:  3,
		Products:      []ProductSale{{ProductID: 7, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ProductsSold)

	// Итоговая сумма визита включает товары: 100 за услуги плюс 2 * 15
	assert.InDelta(t, 130.0, resp.TotalAmount, 1e-9)
	require.NotNil(t, e.appointments.completedTotal)
	assert.InDelta(t, 130.0, *e.appointments.completedTotal, 1e-9)

	require.NotNil(t, e.payments.created)
	assert.InDelta(t, 130.0, e.payments.created.Amount, 1e-9)

	// Та же сумма попадает в запись дохода
	require.NotNil(t, e.cashflow.created)
	assert.InDelta(t, 130.0, e.cashflow.created.Amount, 1e-9)

	require.Len(t, e.logs.logs, 1)
	assert.InDelta(t, 130.0, e.logs.logs[0].Changes["total"].(float64), 1e-9)

	require.Len(t, e.products.movements, 1)
	assert.Equal(t, domain.ProductMovementOut, e.products.movements[0].Type)
	assert.Equal(t, 2, e.products.movements[0].Quantity)
	assert.Equal(t, -2, e.products.stockDeltas[7])
}

func TestExecute_UnknownProductFailsBeforeSideEffects(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "cash",
		Products:      []ProductSale{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Товары резолвятся до записей: статус не тронут, платежа нет
	assert.Nil(t, e.appointments.completedID)
	assert.Nil(t, e.payments.created)
	assert.Nil(t, e.commissions.created)
}

func TestExecute_MidSequenceFailureLeavesEarlierSteps(t *testing.T) {
	e := newEnv()
	e.payments.err = errors.New("payments table unavailable")
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrInternal)

	// Последовательность без общей транзакции: статус уже переведен,
	// но комиссия и запись дохода не создаются
	require.NotNil(t, e.appointments.completedID)
	assert.Equal(t, int64(10), *e.appointments.completedID)
	assert.Nil(t, e.commissions.created)
	assert.Nil(t, e.cashflow.created)
}

func TestExecute_NonConfirmedAppointment(t *testing.T) {
	e := newEnv()
	e.appointments.appointment.Status = domain.StatusCancelled
	e.appointments.appointment.CancelledAt = ptrTime(time.Now())
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrCannotComplete)
	assert.Nil(t, e.appointments.completedID)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	e := newEnv()
	e.appointments.getErr = appointmentRepo.ErrAppointmentNotFound
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidPaymentMethod(t *testing.T) {
	uc := newEnv().useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "crypto",
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestExecute_InstallmentsOutOfRange(t *testing.T) {
	uc := newEnv().useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:       1,
		AppointmentID: 10,
		PaymentMethod: "card",
		Installments:  domain.MaxInstallments + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInstallments)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
