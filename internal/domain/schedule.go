package domain

import (
	"time"

	"github.com/salonhq/scheduling-service/pkg/types"
)

// BusinessHours is a salon's open interval for one weekday.
// SalonID == nil marks a tenant-level default row used as a fallback
// for salons without their own configuration.
//
// Weekday uses the canonical time.Weekday numbering (Sunday = 0) everywhere;
// values are stored in the database as-is.
type BusinessHours struct {
	ID       int64
	TenantID int64
	SalonID  *int64
	Weekday  time.Weekday
	Closed   bool
	// Open interval; meaningless when Closed is true
	Hours types.Interval

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayHours is the resolved open interval of a salon for a concrete date
type DayHours struct {
	Open  bool
	Hours types.Interval
}

// ShiftStatus lifecycle status of a shift record
type ShiftStatus string

const (
	ShiftStatusActive ShiftStatus = "active"
)

// Shift is a staff member's working interval for a specific date.
// Absence of a shift record means the staff member is unavailable that
// date regardless of the salon's business hours.
type Shift struct {
	ID       int64
	TenantID int64
	StaffID  int64
	Date     time.Time
	Interval types.Interval
	Status   ShiftStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
