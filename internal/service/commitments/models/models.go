package models

import (
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
)

// CommitmentResponse модель записи расписания для внешних слоев
type CommitmentResponse struct {
	ID          int64
	TenantID    int64
	SalonID     int64
	StaffID     int64
	Kind        string
	CustomerID  *int64
	ServiceID   *int64
	Description *string
	Date        time.Time
	Start       string
	End         string
	Status      string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetStatusRequest запрос на смену статуса записи
type SetStatusRequest struct {
	TenantID int64
	Status   string
}

// ListRequest запрос расписания салона
type ListRequest struct {
	TenantID        int64
	SalonID         int64
	Date            *time.Time
	StaffID         *int64
	Status          *string
	IncludeInactive bool
}

// CommitmentListResponse список записей
type CommitmentListResponse struct {
	Commitments []*CommitmentResponse
	Total       int
}

// FromDomainCommitment конвертирует domain.Commitment в response-модель
func FromDomainCommitment(c *domain.Commitment) *CommitmentResponse {
	return &CommitmentResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		SalonID:     c.SalonID,
		StaffID:     c.StaffID,
		Kind:        string(c.Kind),
		CustomerID:  c.CustomerID,
		ServiceID:   c.ServiceID,
		Description: c.Description,
		Date:        c.Date,
		Start:       c.Interval.Start.String(),
		End:         c.Interval.End.String(),
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCommitmentList конвертирует слайс записей
func FromDomainCommitmentList(commitments []*domain.Commitment) *CommitmentListResponse {
	result := make([]*CommitmentResponse, len(commitments))
	for i, c := range commitments {
		result[i] = FromDomainCommitment(c)
	}
	return &CommitmentListResponse{
		Commitments: result,
		Total:       len(result),
	}
}

// ToDomainStatus валидирует и конвертирует строковый статус
func ToDomainStatus(s string) (domain.CommitmentStatus, error) {
	status := domain.CommitmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown commitment status %q", s)
	}
	return status, nil
}

// ToDomainFilter конвертирует запрос списка в domain-фильтр
func (r *ListRequest) ToDomainFilter() (domain.SalonScheduleFilter, error) {
	filter := domain.SalonScheduleFilter{
		TenantID:        r.TenantID,
		SalonID:         r.SalonID,
		Date:            r.Date,
		StaffID:         r.StaffID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.SalonScheduleFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
