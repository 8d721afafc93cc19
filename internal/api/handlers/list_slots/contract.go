package list_slots

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

type SlotService interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailableSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
