package check_conflict

import (
	"context"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

type ConflictDetector interface {
	FindConflict(ctx context.Context, tenantID, staffID int64, date time.Time, candidate types.Interval, excludeID *int64) (*domain.Commitment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
