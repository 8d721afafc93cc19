package commitments

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// CommitmentRepository интерфейс репозитория записей расписания
type CommitmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Commitment, error)
	ListBySalon(ctx context.Context, filter domain.SalonScheduleFilter) ([]*domain.Commitment, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.CommitmentStatus) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
