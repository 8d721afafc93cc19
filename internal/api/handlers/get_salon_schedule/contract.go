package get_salon_schedule

import (
	"context"

	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
)

type CommitmentService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.CommitmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
