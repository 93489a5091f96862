package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/pkg/types"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return d
}

func TestResolveWorkingWindow_EmptyTableFallsBackToDefault(t *testing.T) {
	// Пустая таблица: салон работает по умолчанию каждый день, включая выходные
	for day := 0; day < 7; day++ {
		d := date(t, "2025-11-02").AddDate(0, 0, day) // 2025-11-02 это воскресенье
		window := ResolveWorkingWindow(nil, d)

		require.NotNil(t, window, "weekday %d", int(d.Weekday()))
		assert.Equal(t, types.TimeString("09:00"), window.Start)
		assert.Equal(t, types.TimeString("18:00"), window.End)
	}
}

func TestResolveWorkingWindow_MissingWeekdayRowMeansClosed(t *testing.T) {
	hours := []WorkingHours{
		{Weekday: 1, IsOpen: true, StartTime: "10:00", EndTime: "19:00"},
	}

	monday := date(t, "2025-11-03")
	tuesday := date(t, "2025-11-04")

	window := ResolveWorkingWindow(hours, monday)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("10:00"), window.Start)

	// Для вторника строки нет: закрыто, а не дефолтное окно
	assert.Nil(t, ResolveWorkingWindow(hours, tuesday))
}

func TestResolveWorkingWindow_ClosedRow(t *testing.T) {
	hours := []WorkingHours{
		{Weekday: 0, IsOpen: false, StartTime: "09:00", EndTime: "18:00"},
	}
	sunday := date(t, "2025-11-02")
	assert.Nil(t, ResolveWorkingWindow(hours, sunday))
}

func TestGenerateSlots_StandardWindow(t *testing.T) {
	window := &WorkingWindow{Start: "09:00", End: "18:00"}

	slots := GenerateSlots(window, 30)

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[17])
}

func TestGenerateSlots_ClosedDayReturnsEmpty(t *testing.T) {
	slots := GenerateSlots(nil, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	window := &WorkingWindow{Start: "08:30", End: "12:00"}

	first := GenerateSlots(window, 30)
	second := GenerateSlots(window, 30)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_CustomInterval(t *testing.T) {
	window := &WorkingWindow{Start: "09:00", End: "10:00"}

	slots := GenerateSlots(window, 15)

	require.Len(t, slots, 4)
	assert.Equal(t, types.TimeString("09:45"), slots[3])
}
