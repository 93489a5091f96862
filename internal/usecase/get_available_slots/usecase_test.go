package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
)

// Фейковые зависимости

type fakeWorkingHoursRepo struct {
	hours []domain.WorkingHours
	err   error
}

func (f *fakeWorkingHoursRepo) ListBySalon(_ context.Context, _ int64) ([]domain.WorkingHours, error) {
	return f.hours, f.err
}

type fakeTimeBlockRepo struct {
	blocks []domain.TimeBlock
	err    error
}

func (f *fakeTimeBlockRepo) ListByProfessional(_ context.Context, _, _ int64) ([]domain.TimeBlock, error) {
	return f.blocks, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListConfirmedByProfessionalOnDate(_ context.Context, _, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	hours *fakeWorkingHoursRepo,
	blocks *fakeTimeBlockRepo,
	appointments *fakeAppointmentRepo,
	professionals *fakeProfessionalRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(hours, blocks, appointments, professionals, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func activeProfessional() *domain.Professional {
	return &domain.Professional{ID: 2, SalonID: 1, Name: "Ana", IsActive: true}
}

func slotStarts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s.StartTime)
	}
	return out
}

func TestExecute_DefaultWindowWhenNoHoursConfigured(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // вторник
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	// Пустая таблица графика: окно по умолчанию 09:00-18:00, шаг 30 минут
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", string(resp.Slots[0].StartTime))
	assert.Equal(t, "17:30", string(resp.Slots[17].StartTime))
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.Slots[0].DurationMinutes)
}

func TestExecute_ClosedWeekdayReturnsEmptySlots(t *testing.T) {
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // воскресенье
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 0, IsOpen: false},
			{SalonID: 1, Weekday: 1, IsOpen: true, StartTime: "09:00", EndTime: "18:00"},
		}},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	// Выходной день не ошибка, просто нет слотов
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedSlotsAreExcluded(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "12:00"},
		}},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				ID:             7,
				ProfessionalID: 2,
				Status:         domain.StatusConfirmed,
				StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				EndAt:          time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			},
		}},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	// Визит 10:00-11:00 выбивает 10:00 и 10:30; слот, заканчивающийся
	// ровно в 10:00, и слот, начинающийся ровно в 11:00, остаются
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotStarts(resp.Slots))
}

func TestExecute_OneTimeBlockFiltersSlots(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "12:00"},
		}},
		&fakeTimeBlockRepo{blocks: []domain.TimeBlock{
			{
				ID:             3,
				ProfessionalID: 2,
				StartAt:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
				EndAt:          time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				Reason:         "обучение",
			},
		}},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotStarts(resp.Slots))
}

func TestExecute_OtherProfessionalBlockDoesNotApply(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "10:00"},
		}},
		&fakeTimeBlockRepo{blocks: []domain.TimeBlock{
			{
				ID:             3,
				ProfessionalID: 99,
				StartAt:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
				EndAt:          time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			},
		}},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(resp.Slots))
}

func TestExecute_SameDayPastSlotsAreExcluded(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "12:00"},
		}},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	require.NoError(t, err)

	// Для сегодняшней даты прошедшие слоты (и текущий 10:00) недоступны
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slotStarts(resp.Slots))
}

func TestExecute_PastDate(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InactiveProfessional(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	prof := activeProfessional()
	prof.IsActive = false

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: prof},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	assert.ErrorIs(t, err, ErrProfessionalInactive)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ProfessionalID: 2, Date: date})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_CustomDurationFiltersTightGaps(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{hours: []domain.WorkingHours{
			{SalonID: 1, Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "11:00"},
		}},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				ID:             7,
				ProfessionalID: 2,
				Status:         domain.StatusConfirmed,
				StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				EndAt:          time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
			},
		}},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, ProfessionalID: 2, Date: date, DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Часовая услуга не влезает в получасовой зазор перед визитом:
	// 09:30-10:30 пересекается с визитом 10:00-10:30
	assert.Equal(t, []string{"09:00", "10:30"}, slotStarts(resp.Slots))
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeWorkingHoursRepo{},
		&fakeTimeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeProfessionalRepo{professional: activeProfessional()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 0, ProfessionalID: 2, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
