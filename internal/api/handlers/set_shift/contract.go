package set_shift

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/domain"
)

type ShiftService interface {
	Set(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
