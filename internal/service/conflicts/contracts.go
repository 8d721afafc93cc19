package conflicts

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// CommitmentRepository интерфейс репозитория записей расписания
type CommitmentRepository interface {
	ListByStaffDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Commitment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
