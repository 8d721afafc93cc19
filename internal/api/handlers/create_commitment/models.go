package create_commitment

import (
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	createCommitment "github.com/salonhq/scheduling-service/internal/usecase/create_commitment"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// CreateCommitmentRequest HTTP request model
type CreateCommitmentRequest struct {
	SalonID     int64   `json:"salonId"`
	StaffID     int64   `json:"staffId"`
	Kind        string  `json:"kind"` // customer | task
	CustomerID  *int64  `json:"customerId,omitempty"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`          // "2025-10-15"
	Start       string  `json:"start"`         // "10:00"
	End         *string `json:"end,omitempty"` // по умолчанию start + 30 минут
	Notes       *string `json:"notes,omitempty"`
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
func (r *CreateCommitmentRequest) ToUseCaseRequest(tenantID int64) (*createCommitment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.ParseTimeOfDay(r.Start)
	if err != nil {
		return nil, err
	}

	var end *types.TimeOfDay
	if r.End != nil {
		parsed, err := types.ParseTimeOfDay(*r.End)
		if err != nil {
			return nil, err
		}
		end = &parsed
	}

	return &createCommitment.Request{
		TenantID:    tenantID,
		SalonID:     r.SalonID,
		StaffID:     r.StaffID,
		Kind:        domain.CommitmentKind(r.Kind),
		CustomerID:  r.CustomerID,
		ServiceID:   r.ServiceID,
		Description: r.Description,
		Date:        date,
		Start:       start,
		End:         end,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCommitment.Response) *CommitmentResponse {
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
