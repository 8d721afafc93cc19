package set_commitment_status

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
)

type CommitmentService interface {
	SetStatus(ctx context.Context, id int64, req *models.SetStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
