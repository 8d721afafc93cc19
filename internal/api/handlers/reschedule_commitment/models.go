package reschedule_commitment

import (
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	rescheduleCommitment "github.com/salonhq/scheduling-service/internal/usecase/reschedule_commitment"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// RescheduleCommitmentRequest HTTP request model.
// Все поля опциональны, незаполненные остаются как в записи
type RescheduleCommitmentRequest struct {
	Date    *string `json:"date,omitempty"`  // "2025-10-15"
	Start   *string `json:"start,omitempty"` // "10:00"
	End     *string `json:"end,omitempty"`
	StaffID *int64  `json:"staffId,omitempty"`
}

// CommitmentResponse HTTP response model
type CommitmentResponse struct {
	ID          int64   `json:"id"`
	SalonID     int64   `json:"salonId"`
	StaffID     int64   `json:"staffId"`
	Kind        string  `json:"kind"`
	CustomerID  *int64  `json:"customerId,omitempty"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleCommitmentRequest) ToUseCaseRequest(tenantID, id int64) (*rescheduleCommitment.Request, error) {
	req := &rescheduleCommitment.Request{
		TenantID: tenantID,
		ID:       id,
		StaffID:  r.StaffID,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Start != nil {
		start, err := types.ParseTimeOfDay(*r.Start)
		if err != nil {
			return nil, err
		}
		req.Start = &start
	}

	if r.End != nil {
		end, err := types.ParseTimeOfDay(*r.End)
		if err != nil {
			return nil, err
		}
		req.End = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleCommitment.Response) *CommitmentResponse {
	return &CommitmentResponse{
		ID:          resp.ID,
		SalonID:     resp.SalonID,
		StaffID:     resp.StaffID,
		Kind:        resp.Kind,
		CustomerID:  resp.CustomerID,
		ServiceID:   resp.ServiceID,
		Description: resp.Description,
		Date:        resp.Date.Format(domain.DateFormat),
		Start:       resp.Start.String(),
		End:         resp.End.String(),
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
