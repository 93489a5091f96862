package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	clientRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/client"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
)

// Фейковые зависимости

type fakeAppointmentRepo struct {
	existing []*domain.Appointment

	created    *domain.Appointment
	createErr  error
	lines      []*domain.AppointmentService
	addLineErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appointment.ID = 10
	appointment.CreatedAt = time.Now()
	f.created = appointment
	return appointment, nil
}

func (f *fakeAppointmentRepo) AddService(_ context.Context, item *domain.AppointmentService) (*domain.AppointmentService, error) {
	if f.addLineErr != nil {
		return nil, f.addLineErr
	}
	item.ID = int64(len(f.lines) + 1)
	f.lines = append(f.lines, item)
	return item, nil
}

func (f *fakeAppointmentRepo) ListConfirmedByProfessionalOnDate(_ context.Context, _, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, _ int64, ids []int64) ([]*domain.Service, error) {
	found := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		for _, svc := range f.services {
			if svc.ID == id {
				found = append(found, svc)
			}
		}
	}
	return found, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, _ int64) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.professional, nil
}

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByID(_ context.Context, _, _ int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type fakeWorkingHoursRepo struct {
	hours []domain.WorkingHours
}

func (f *fakeWorkingHoursRepo) ListBySalon(_ context.Context, _ int64) ([]domain.WorkingHours, error) {
	return f.hours, nil
}

type fakeTimeBlockRepo struct {
	blocks []domain.TimeBlock
}

func (f *fakeTimeBlockRepo) ListByProfessional(_ context.Context, _, _ int64) ([]domain.TimeBlock, error) {
	return f.blocks, nil
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

type env struct {
	appointments  *fakeAppointmentRepo
	services      *fakeServiceRepo
	professionals *fakeProfessionalRepo
	clients       *fakeClientRepo
	hours         *fakeWorkingHoursRepo
	blocks        *fakeTimeBlockRepo
	logs          *fakeLogRepo
}

// Окружение теста: активный мастер, две услуги каталога 50/30мин и 30/20мин,
// график не настроен (окно по умолчанию 09:00-18:00)
func newEnv() *env {
	return &env{
		appointments: &fakeAppointmentRepo{},
		services: &fakeServiceRepo{services: []*domain.Service{
			{ID: 100, SalonID: 1, Name: "Haircut", Price: 50, DurationMinutes: 30, IsActive: true},
			{ID: 200, SalonID: 1, Name: "Manicure", Price: 30, DurationMinutes: 20, IsActive: true},
		}},
		professionals: &fakeProfessionalRepo{professional: &domain.Professional{
			ID: 2, SalonID: 1, Name: "Ana", IsActive: true,
		}},
		clients: &fakeClientRepo{client: &domain.Client{ID: 5, SalonID: 1}},
		hours:   &fakeWorkingHoursRepo{},
		blocks:  &fakeTimeBlockRepo{},
		logs:    &fakeLogRepo{},
	}
}

func (e *env) useCase() *UseCase {
	return NewUseCase(
		e.appointments,
		e.services,
		e.professionals,
		e.clients,
		e.hours,
		e.blocks,
		e.logs,
		nopLogger{},
	)
}

func TestExecute_DerivesTotalsFromFrozenServiceData(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	startAt := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        startAt,
		ServiceIDs:     []int64{100, 200},
	})
	require.NoError(t, err)

	// 50 + 30 по цене, 30 + 20 минут по длительности
	assert.InDelta(t, 80.0, resp.TotalAmount, 1e-9)
	assert.Equal(t, startAt.Add(50*time.Minute), resp.EndAt)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Цены и длительности зафиксированы в строках на момент записи
	require.Len(t, resp.Services, 2)
	assert.InDelta(t, 50.0, resp.Services[0].PriceCharged, 1e-9)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
	assert.InDelta(t, 30.0, resp.Services[1].PriceCharged, 1e-9)
	assert.Equal(t, 20, resp.Services[1].DurationMinutes)

	require.NotNil(t, e.appointments.created)
	assert.InDelta(t, 80.0, e.appointments.created.TotalAmount, 1e-9)

	require.Len(t, e.logs.logs, 1)
	assert.Equal(t, domain.LogCreated, e.logs.logs[0].Action)
}

func TestExecute_SalonClosedOnWeekday(t *testing.T) {
	e := newEnv()
	e.hours.hours = []domain.WorkingHours{
		{SalonID: 1, Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "18:00"},
	}
	uc := e.useCase()

	// 2026-03-10 вторник, строки для него нет: салон закрыт
	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrSalonClosed)
	assert.Nil(t, e.appointments.created)
}

func TestExecute_OutsideWorkingWindow(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	// Визит 17:45 + 30 минут выходит за окно по умолчанию до 18:00
	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OverlappingAppointment(t *testing.T) {
	e := newEnv()
	e.appointments.existing = []*domain.Appointment{
		{
			ID:             7,
			ProfessionalID: 2,
			Status:         domain.StatusConfirmed,
			StartAt:        time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_TouchingAppointmentDoesNotConflict(t *testing.T) {
	e := newEnv()
	e.appointments.existing = []*domain.Appointment{
		{
			ID:             7,
			ProfessionalID: 2,
			Status:         domain.StatusConfirmed,
			StartAt:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
	}
	uc := e.useCase()

	// Границы интервалов совпадают, пересечения нет
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestExecute_BlockedInterval(t *testing.T) {
	e := newEnv()
	e.blocks.blocks = []domain.TimeBlock{
		{
			ID:             3,
			ProfessionalID: 2,
			StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_UnknownService(t *testing.T) {
	e := newEnv()
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100, 999},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	e := newEnv()
	e.services.services[1].IsActive = false
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100, 200},
	})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_InactiveProfessional(t *testing.T) {
	e := newEnv()
	e.professionals.professional.IsActive = false
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrProfessionalInactive)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	e := newEnv()
	e.professionals.err = professionalRepo.ErrProfessionalNotFound
	uc := e.useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	e := newEnv()
	e.clients.err = clientRepo.ErrClientNotFound
	uc := e.useCase()

	clientID := int64(5)
	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		ClientID:       &clientID,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ServiceLineFailureLeavesAppointmentCreated(t *testing.T) {
	e := newEnv()
	e.appointments.addLineErr = errors.New("lines table unavailable")
	uc := e.useCase()

	// Запись строк идет после визита без общей транзакции: сбой на строке
	// оставляет визит созданным и возвращает ошибку
	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotNil(t, e.appointments.created)
	assert.Empty(t, e.logs.logs)
}

func TestExecute_LogFailureDoesNotAbort(t *testing.T) {
	e := newEnv()
	e.logs.err = errors.New("journal down")
	uc := e.useCase()

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestExecute_DuplicateServiceIDs(t *testing.T) {
	uc := newEnv().useCase()

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		ProfessionalID: 2,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ServiceIDs:     []int64{100, 100},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
