package publish_slots

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// SlotRepository интерфейс репозитория публикуемых окон записи
type SlotRepository interface {
	Create(ctx context.Context, s *domain.AvailableSlot) (*domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
