package create_commitment

import (
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID int64
	SalonID  int64
	StaffID  int64
	Kind     domain.CommitmentKind

	// Для kind=customer
	CustomerID *int64
	ServiceID  *int64

	// Для kind=task
	Description *string

	Date  time.Time       // Дата записи (без времени)
	Start types.TimeOfDay // Время начала
	// Время окончания; при отсутствии - Start + 30 минут.
	// Длительность фиксированная, справочник услуг не используется.
	End *types.TimeOfDay

	Notes *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	TenantID    int64
	SalonID     int64
	StaffID     int64
	Kind        string
	CustomerID  *int64
	ServiceID   *int64
	Description *string
	Date        time.Time
	Start       types.TimeOfDay
	End         types.TimeOfDay
	Status      string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// fromDomain конвертирует созданную запись в response
func fromDomain(c *domain.Commitment) *Response {
	return &Response{
		ID:          c.ID,
		TenantID:    c.TenantID,
		SalonID:     c.SalonID,
		StaffID:     c.StaffID,
		Kind:        string(c.Kind),
		CustomerID:  c.CustomerID,
		ServiceID:   c.ServiceID,
		Description: c.Description,
		Date:        c.Date,
		Start:       c.Interval.Start,
		End:         c.Interval.End,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
