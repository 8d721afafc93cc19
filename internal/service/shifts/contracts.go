package shifts

import (
	"context"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByStaffDate(ctx context.Context, tenantID, staffID int64, date time.Time) (*domain.Shift, error)
	Upsert(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	Delete(ctx context.Context, tenantID, staffID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
