package domain

import (
	"time"

	"github.com/salonhq/scheduling-service/pkg/types"
)

// CommitmentKind discriminates what occupies the staff timeline
type CommitmentKind string

const (
	// KindCustomer is a customer appointment; requires CustomerID and ServiceID
	KindCustomer CommitmentKind = "customer"
	// KindTask is an internal task (cleaning, training, break); requires Description
	KindTask CommitmentKind = "task"
)

// Valid returns true for a known commitment kind
func (k CommitmentKind) Valid() bool {
	return k == KindCustomer || k == KindTask
}

// CommitmentStatus represents the lifecycle status of a commitment
type CommitmentStatus string

const (
	StatusScheduled CommitmentStatus = "scheduled"
	StatusConfirmed CommitmentStatus = "confirmed"
	StatusCompleted CommitmentStatus = "completed"
	StatusCancelled CommitmentStatus = "cancelled"
	StatusNoShow    CommitmentStatus = "no_show"
)

// Valid returns true for a known commitment status
func (s CommitmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that accept no further transitions
func (s CommitmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// statusTransitions transition table of the commitment state machine.
// scheduled -> confirmed, cancelled, no_show
// confirmed -> completed, cancelled, no_show
// completed, cancelled, no_show are terminal.
var statusTransitions = map[CommitmentStatus][]CommitmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// CanTransitionTo reports whether the status machine allows moving to target.
// Setting the current status again is allowed as an idempotent no-op.
func (s CommitmentStatus) CanTransitionTo(target CommitmentStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Commitment is a scheduled occupation of a staff member's time:
// either a customer appointment or an internal task. Both kinds share
// the same staff timeline and the same overlap rules.
type Commitment struct {
	ID       int64
	TenantID int64
	SalonID  int64
	StaffID  int64
	Kind     CommitmentKind

	// Customer appointment fields (nil for tasks)
	CustomerID *int64
	ServiceID  *int64

	// Task fields (nil for customer appointments)
	Description *string

	Date     time.Time // calendar date, time component is zero
	Interval types.Interval
	Status   CommitmentStatus
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the commitment occupies the staff timeline.
// Cancelled and no-show commitments free their interval.
func (c *Commitment) IsActive() bool {
	return c.Status != StatusCancelled && c.Status != StatusNoShow
}

// StaffDayFilter filter for fetching commitments of one staff member on one date
type StaffDayFilter struct {
	TenantID  int64
	StaffID   int64
	Date      time.Time
	ExcludeID *int64 // skip this commitment (reschedule against itself)
	// ActiveOnly limits the scan to statuses that occupy the timeline
	ActiveOnly bool
}

// SalonScheduleFilter filter for the salon day-schedule view
type SalonScheduleFilter struct {
	TenantID        int64
	SalonID         int64
	Date            *time.Time
	StaffID         *int64
	Status          *CommitmentStatus
	IncludeInactive bool
}
