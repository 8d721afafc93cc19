package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    CommitmentStatus
		to      CommitmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no_show", StatusScheduled, StatusNoShow, true},
		{"scheduled to completed skips confirmation", StatusScheduled, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed back to scheduled", StatusConfirmed, StatusScheduled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled cannot be confirmed", StatusCancelled, StatusConfirmed, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
		{"repeating current status is a no-op", StatusConfirmed, StatusConfirmed, true},
		{"repeating terminal status is a no-op", StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCommitmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestCommitment_IsActive(t *testing.T) {
	for _, status := range []CommitmentStatus{StatusScheduled, StatusConfirmed, StatusCompleted} {
		c := Commitment{Status: status}
		assert.True(t, c.IsActive(), "status %s must occupy the timeline", status)
	}

	for _, status := range InactiveStatuses {
		c := Commitment{Status: status}
		assert.False(t, c.IsActive(), "status %s must free the timeline", status)
	}
}

func TestCommitmentKind_Valid(t *testing.T) {
	assert.True(t, KindCustomer.Valid())
	assert.True(t, KindTask.Valid())
	assert.False(t, CommitmentKind("walk_in").Valid())
}
