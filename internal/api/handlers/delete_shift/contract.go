package delete_shift

import (
	"context"
	"time"
)

type ShiftService interface {
	Remove(ctx context.Context, tenantID, staffID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
