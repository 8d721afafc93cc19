package reschedule_commitment

import (
	"context"

	rescheduleCommitment "github.com/salonhq/scheduling-service/internal/usecase/reschedule_commitment"
)

type RescheduleCommitmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleCommitment.Request) (*rescheduleCommitment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
