package calendar

import (
	"context"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetForWeekday(ctx context.Context, tenantID, salonID int64, weekday time.Weekday) (*domain.BusinessHours, error)
	ListBySalon(ctx context.Context, tenantID, salonID int64) ([]*domain.BusinessHours, error)
	Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
