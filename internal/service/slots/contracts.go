package slots

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// SlotRepository интерфейс репозитория публикуемых окон
type SlotRepository interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailableSlot, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
