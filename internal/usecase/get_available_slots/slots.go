package get_available_slots

import (
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// filterBlockedSlots отбрасывает слоты, пересекающиеся с блокировками мастера
func filterBlockedSlots(
	slots []types.TimeString,
	blocks []domain.TimeBlock,
	professionalID int64,
	date time.Time,
	slotDuration int,
) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if domain.IsSlotBlocked(blocks, professionalID, date, slot, slotDuration) {
			continue
		}
		available = append(available, slot)
	}
	return available
}

// filterBookedSlots отбрасывает слоты, пересекающиеся с подтвержденными визитами.
// Пересечение строгое: визит, заканчивающийся ровно в начале слота (или
// начинающийся ровно в его конце), слот не занимает.
func filterBookedSlots(
	slots []types.TimeString,
	appointments []*domain.Appointment,
	date time.Time,
	slotDuration int,
) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		slotStart := atTimeOfDay(date, slot)
		slotEnd := slotStart.Add(time.Duration(slotDuration) * time.Minute)

		overlaps := false
		for _, appointment := range appointments {
			if slotStart.Before(appointment.EndAt) && slotEnd.After(appointment.StartAt) {
				overlaps = true
				break
			}
		}

		if !overlaps {
			available = append(available, slot)
		}
	}

	return available
}

// filterPastSlots отбрасывает уже прошедшие слоты, если дата сегодняшняя
func filterPastSlots(slots []types.TimeString, date, now time.Time) []types.TimeString {
	if !isSameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(currentTime) {
			available = append(available, slot)
		}
	}
	return available
}

// atTimeOfDay собирает абсолютный момент: дата + время "HH:MM"
func atTimeOfDay(date time.Time, t types.TimeString) time.Time {
	minutes, err := t.Minutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
