package domain

import (
	"time"

	"github.com/salonhq/scheduling-service/pkg/types"
)

// Recurrence rule for expanding a published slot over a date range
type Recurrence string

const (
	// RecurrenceNone publishes a single slot on the start date
	RecurrenceNone Recurrence = "none"
	// RecurrenceDaily publishes a slot on every date up to the until date
	RecurrenceDaily Recurrence = "daily"
	// RecurrenceWeekly publishes on dates sharing the start date's weekday
	RecurrenceWeekly Recurrence = "weekly"
	// RecurrenceWeekdays publishes on Monday through Friday only
	RecurrenceWeekdays Recurrence = "weekdays"
)

// Valid returns true for a known recurrence rule
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceWeekdays:
		return true
	}
	return false
}

// AvailableSlot is a publishable open booking window shown to customers.
// It is informational inventory: booking a commitment does not consume it,
// and operators delete slots independently.
type AvailableSlot struct {
	ID       int64
	TenantID int64
	SalonID  int64
	StaffID  int64
	Date     time.Time
	Interval types.Interval

	CreatedAt time.Time
}

// SlotFilter filter for listing published slots
type SlotFilter struct {
	TenantID int64
	SalonID  int64
	StaffID  *int64
	Date     *time.Time
}
