package get_business_hours

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

type CalendarService interface {
	GetWeek(ctx context.Context, tenantID, salonID int64) ([]*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
