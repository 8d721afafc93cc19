package domain

// Default values
const (
	// DefaultCommitmentDurationMinutes is used when a request omits the end
	// time. The duration is fixed and deliberately does not consult the
	// service catalog.
	DefaultCommitmentDurationMinutes = 30

	// DefaultPublishHorizonMonths horizon for slot publication when the
	// until date is absent or malformed
	DefaultPublishHorizonMonths = 1
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxDescriptionLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that do not occupy the staff timeline.
// Used when filtering commitments for conflict scans.
var InactiveStatuses = []CommitmentStatus{
	StatusCancelled,
	StatusNoShow,
}
