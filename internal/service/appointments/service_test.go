package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	appointmentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointment"
	serviceRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/service"
	"github.com/nkosach/SLN-SalonService/internal/service/appointments/models"
)

// Фейковые зависимости

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	items       []domain.AppointmentService
	getErr      error

	updatedTotal *float64
	updatedEndAt *time.Time
	cancelReason *string
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.appointment
	return &cp, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeAppointmentRepo) UpdateTotals(_ context.Context, _ int64, totalAmount float64, endAt time.Time) error {
	f.updatedTotal = &totalAmount
	f.updatedEndAt = &endAt
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelReason = &reason
	return nil
}

func (f *fakeAppointmentRepo) ListServices(_ context.Context, _ int64) ([]domain.AppointmentService, error) {
	out := make([]domain.AppointmentService, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeAppointmentRepo) AddService(_ context.Context, item *domain.AppointmentService) (*domain.AppointmentService, error) {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *item)
	return item, nil
}

func (f *fakeAppointmentRepo) RemoveService(_ context.Context, _, lineID int64) error {
	for i := range f.items {
		if f.items[i].ID == lineID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return appointmentRepo.ErrServiceLineNotFound
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeLogRepo struct {
	logs []*domain.AppointmentLog
	err  error
}

func (f *fakeLogRepo) Create(_ context.Context, log *domain.AppointmentLog) (*domain.AppointmentLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.logs = append(f.logs, log)
	return log, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedAppointment(startAt time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:             10,
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        startAt,
		EndAt:          startAt.Add(30 * time.Minute),
		Status:         domain.StatusConfirmed,
		TotalAmount:    50,
	}
}

func TestAddService_RecalculatesTotalAndEndAt(t *testing.T) {
	startAt := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointment: confirmedAppointment(startAt),
		items: []domain.AppointmentService{
			{ID: 1, AppointmentID: 10, ServiceID: 100, PriceCharged: 50, DurationMinutes: 30},
		},
	}
	catalog := &fakeServiceRepo{service: &domain.Service{
		ID: 200, SalonID: 1, Name: "Manicure", Price: 30, DurationMinutes: 20, IsActive: true,
	}}
	logs := &fakeLogRepo{}

	svc := NewService(repo, catalog, logs, nopLogger{})

	resp, err := svc.AddService(context.Background(), 1, 10, &models.AddServiceRequest{ServiceID: 200})
	require.NoError(t, err)

	// Сумма и окончание выводятся заново из полного набора строк
	assert.InDelta(t, 80.0, resp.TotalAmount, 1e-9)
	assert.Equal(t, startAt.Add(50*time.Minute), resp.EndAt)
	require.NotNil(t, repo.updatedTotal)
	assert.InDelta(t, 80.0, *repo.updatedTotal, 1e-9)
	assert.Len(t, resp.Services, 2)

	// Цена и длительность зафиксированы на момент добавления
	assert.InDelta(t, 30.0, resp.Services[1].PriceCharged, 1e-9)
	assert.Equal(t, 20, resp.Services[1].DurationMinutes)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, domain.LogServiceAdded, logs.logs[0].Action)
}

func TestAddService_InactiveService(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: confirmedAppointment(time.Now())}
	catalog := &fakeServiceRepo{service: &domain.Service{ID: 200, IsActive: false}}

	svc := NewService(repo, catalog, &fakeLogRepo{}, nopLogger{})

	_, err := svc.AddService(context.Background(), 1, 10, &models.AddServiceRequest{ServiceID: 200})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestAddService_ServiceNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: confirmedAppointment(time.Now())}
	catalog := &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound}

	svc := NewService(repo, catalog, &fakeLogRepo{}, nopLogger{})

	_, err := svc.AddService(context.Background(), 1, 10, &models.AddServiceRequest{ServiceID: 999})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddService_CompletedAppointmentNotModifiable(t *testing.T) {
	appointment := confirmedAppointment(time.Now())
	appointment.Status = domain.StatusCompleted
	repo := &fakeAppointmentRepo{appointment: appointment}

	svc := NewService(repo, &fakeServiceRepo{}, &fakeLogRepo{}, nopLogger{})

	_, err := svc.AddService(context.Background(), 1, 10, &models.AddServiceRequest{ServiceID: 200})
	assert.ErrorIs(t, err, ErrNotModifiable)
}

func TestAddService_LogFailureDoesNotAbort(t *testing.T) {
	startAt := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{appointment: confirmedAppointment(startAt)}
	catalog := &fakeServiceRepo{service: &domain.Service{
		ID: 200, Price: 30, DurationMinutes: 20, IsActive: true,
	}}
	logs := &fakeLogRepo{err: errors.New("journal down")}

	svc := NewService(repo, catalog, logs, nopLogger{})

	// Журнал пишется по возможности: его отказ не прерывает операцию
	resp, err := svc.AddService(context.Background(), 1, 10, &models.AddServiceRequest{ServiceID: 200})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, resp.TotalAmount, 1e-9)
}

func TestRemoveService_LastLineFloorsTotalsAtZero(t *testing.T) {
	startAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointment: confirmedAppointment(startAt),
		items: []domain.AppointmentService{
			{ID: 7, AppointmentID: 10, ServiceID: 100, PriceCharged: 50, DurationMinutes: 30},
		},
	}
	logs := &fakeLogRepo{}

	svc := NewService(repo, &fakeServiceRepo{}, logs, nopLogger{})

	resp, err := svc.RemoveService(context.Background(), 1, 10, &models.RemoveServiceRequest{LineID: 7})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, resp.TotalAmount, 1e-9)
	assert.Equal(t, startAt, resp.EndAt)
	assert.Empty(t, resp.Services)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, domain.LogServiceRemoved, logs.logs[0].Action)
}

func TestRemoveService_LineNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointment: confirmedAppointment(time.Now()),
		items: []domain.AppointmentService{
			{ID: 7, PriceCharged: 50, DurationMinutes: 30},
		},
	}

	svc := NewService(repo, &fakeServiceRepo{}, &fakeLogRepo{}, nopLogger{})

	_, err := svc.RemoveService(context.Background(), 1, 10, &models.RemoveServiceRequest{LineID: 99})
	assert.ErrorIs(t, err, ErrServiceLineNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: confirmedAppointment(time.Now())}
	logs := &fakeLogRepo{}

	svc := NewService(repo, &fakeServiceRepo{}, logs, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 10, &models.CancelAppointmentRequest{Reason: "клиент не придет"})
	require.NoError(t, err)

	require.NotNil(t, repo.cancelReason)
	assert.Equal(t, "клиент не придет", *repo.cancelReason)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, domain.LogCancelled, logs.logs[0].Action)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: confirmedAppointment(time.Now())}

	svc := NewService(repo, &fakeServiceRepo{}, &fakeLogRepo{}, nopLogger{})

	reason := strings.Repeat("a", domain.MaxCancellationReasonLength+1)
	err := svc.Cancel(context.Background(), 1, 10, &models.CancelAppointmentRequest{Reason: reason})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	appointment := confirmedAppointment(time.Now())
	appointment.Status = domain.StatusCompleted
	repo := &fakeAppointmentRepo{appointment: appointment}

	svc := NewService(repo, &fakeServiceRepo{}, &fakeLogRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, 10, &models.CancelAppointmentRequest{Reason: "поздно"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}

	svc := NewService(repo, &fakeServiceRepo{}, &fakeLogRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
