package reschedule_commitment

import (
	"context"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// CommitmentRepository интерфейс репозитория записей расписания
type CommitmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Commitment, error)
	UpdateSchedule(ctx context.Context, tenantID, id int64, date time.Time, interval types.Interval, staffID int64) error
}

// CalendarService резолвер рабочих часов салона
type CalendarService interface {
	Resolve(ctx context.Context, tenantID, salonID int64, date time.Time) (domain.DayHours, error)
}

// ShiftService резолвер смены мастера
type ShiftService interface {
	Resolve(ctx context.Context, tenantID, staffID int64, date time.Time) (types.Interval, error)
}

// ConflictDetector поиск пересечений с существующими записями
type ConflictDetector interface {
	FindConflict(ctx context.Context, tenantID, staffID int64, date time.Time, candidate types.Interval, excludeID *int64) (*domain.Commitment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
