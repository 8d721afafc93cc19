package publish_slots

import (
	"context"

	publishSlots "github.com/salonhq/scheduling-service/internal/usecase/publish_slots"
)

type PublishSlotsUseCase interface {
	Execute(ctx context.Context, req *publishSlots.Request) (*publishSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
