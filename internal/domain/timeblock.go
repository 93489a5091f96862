package domain

import (
	"time"

	"github.com/nkosach/SLN-SalonService/pkg/types"
)

// RecurrenceType describes how a time block repeats.
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"

	// RecurrenceMonthly is accepted as data but never evaluated by the
	// overlap checker. Monthly blocks pass through as not-blocked.
	RecurrenceMonthly RecurrenceType = "monthly"
)

// IsValidRecurrenceType returns true for a known recurrence type.
func IsValidRecurrenceType(t RecurrenceType) bool {
	return t == RecurrenceDaily || t == RecurrenceWeekly || t == RecurrenceMonthly
}

// TimeBlock is a professional-scoped blackout interval, either one-time
// (absolute StartAt/EndAt) or recurring (daily/weekly by time of day).
type TimeBlock struct {
	ID             int64
	SalonID        int64
	ProfessionalID int64

	StartAt time.Time
	EndAt   time.Time

	IsRecurring       bool
	RecurrenceType    *RecurrenceType
	RecurrenceDays    []int // weekdays 0-6, weekly recurrence only
	RecurrenceEndDate *time.Time

	Reason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot reports whether the block intersects the candidate slot
// [slotStart, slotStart+duration) on the given date.
func (b *TimeBlock) BlocksSlot(date time.Time, slotStart types.TimeString, slotDurationMinutes int) bool {
	slotEnd, err := slotStart.AddMinutes(slotDurationMinutes)
	if err != nil {
		return false
	}

	if !b.IsRecurring {
		return b.blocksOneTime(date, slotStart, slotEnd)
	}

	if b.RecurrenceType == nil {
		return false
	}

	switch *b.RecurrenceType {
	case RecurrenceDaily:
		return b.blocksRecurring(date, slotStart, slotEnd)
	case RecurrenceWeekly:
		if !b.appliesToWeekday(int(date.Weekday())) {
			return false
		}
		return b.blocksRecurring(date, slotStart, slotEnd)
	default:
		// monthly: нет логики вычисления, блок никогда не срабатывает
		return false
	}
}

// blocksOneTime compares the slot against the absolute block interval.
// Intersection: slot start inside the block, slot end inside the block,
// or the slot fully contains the block.
func (b *TimeBlock) blocksOneTime(date time.Time, slotStart, slotEnd types.TimeString) bool {
	ss := atTimeOfDay(date, slotStart)
	se := atTimeOfDay(date, slotEnd)
	// слот, переходящий через полночь, относим к следующим суткам
	if !se.After(ss) {
		se = se.AddDate(0, 0, 1)
	}

	startInside := !ss.Before(b.StartAt) && ss.Before(b.EndAt)
	endInside := se.After(b.StartAt) && !se.After(b.EndAt)
	contains := !ss.After(b.StartAt) && !se.Before(b.EndAt)

	return startInside || endInside || contains
}

// blocksRecurring compares the slot's time of day against the block's own
// time-of-day window, ignoring the block's date.
func (b *TimeBlock) blocksRecurring(date time.Time, slotStart, slotEnd types.TimeString) bool {
	if b.RecurrenceEndDate != nil && dateOnly(date).After(dateOnly(*b.RecurrenceEndDate)) {
		return false
	}

	blockStart := types.NewTimeString(b.StartAt)
	blockEnd := types.NewTimeString(b.EndAt)

	startInside := !slotStart.IsBefore(blockStart) && slotStart.IsBefore(blockEnd)
	endInside := slotEnd.IsAfter(blockStart) && !slotEnd.IsAfter(blockEnd)
	contains := !slotStart.IsAfter(blockStart) && !slotEnd.IsBefore(blockEnd)

	return startInside || endInside || contains
}

func (b *TimeBlock) appliesToWeekday(weekday int) bool {
	for _, d := range b.RecurrenceDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsSlotBlocked reports whether any of the professional's blocks intersects
// the candidate slot. Short-circuits on the first matching block.
func IsSlotBlocked(blocks []TimeBlock, professionalID int64, date time.Time, slotStart types.TimeString, slotDurationMinutes int) bool {
	for i := range blocks {
		if blocks[i].ProfessionalID != professionalID {
			continue
		}
		if blocks[i].BlocksSlot(date, slotStart, slotDurationMinutes) {
			return true
		}
	}
	return false
}

// atTimeOfDay собирает абсолютный момент: дата + время "HH:MM"
func atTimeOfDay(date time.Time, t types.TimeString) time.Time {
	minutes, err := t.Minutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
