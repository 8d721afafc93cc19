package create_commitment

import (
	"context"

	createCommitment "github.com/salonhq/scheduling-service/internal/usecase/create_commitment"
)

type CreateCommitmentUseCase interface {
	Execute(ctx context.Context, req *createCommitment.Request) (*createCommitment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
