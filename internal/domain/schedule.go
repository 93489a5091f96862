package domain

import (
	"time"

	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// WorkingWindow is the resolved operating window of a salon for one date.
type WorkingWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// ResolveWorkingWindow resolves the salon operating window for the given date.
//
// An empty working-hours table means the salon never configured its schedule
// and falls back to the default 09:00-18:00 window for every date, weekends
// included. A non-empty table requires an explicit open row per weekday: a
// missing row or is_open=false means closed (nil).
//
// Частично заполненная таблица трактуется как явная конфигурация, а не
// как повод для fallback.
func ResolveWorkingWindow(hours []WorkingHours, date time.Time) *WorkingWindow {
	if len(hours) == 0 {
		return &WorkingWindow{
			Start: types.TimeString(DefaultOpenTime),
			End:   types.TimeString(DefaultCloseTime),
		}
	}

	weekday := int(date.Weekday())
	for _, wh := range hours {
		if wh.Weekday != weekday {
			continue
		}
		if !wh.IsOpen {
			return nil
		}
		start, err := types.NewTimeStringFromString(wh.StartTime)
		if err != nil {
			return nil
		}
		end, err := types.NewTimeStringFromString(wh.EndTime)
		if err != nil {
			return nil
		}
		return &WorkingWindow{Start: start, End: end}
	}

	// Нет строки для этого дня недели: закрыто.
	return nil
}

// GenerateSlots enumerates slot start times within the window with a fixed
// interval: start, start+interval, ... while strictly before the window end.
// Pure function: identical inputs always produce identical output.
func GenerateSlots(window *WorkingWindow, intervalMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if window == nil || intervalMinutes <= 0 {
		return slots
	}

	current := window.Start
	for current.IsBefore(window.End) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			break
		}
		// AddMinutes оборачивается через полночь, защищаемся от зацикливания
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots
}
