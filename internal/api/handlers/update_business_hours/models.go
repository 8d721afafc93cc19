package update_business_hours

import (
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// DayHoursRequest рабочие часы одного дня недели
type DayHoursRequest struct {
	Weekday int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Closed  bool    `json:"closed"`
	Open    *string `json:"open,omitempty"`  // "09:00", обязательно если closed=false
	Close   *string `json:"close,omitempty"` // "18:00"
}

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	Days []DayHoursRequest `json:"days"`
}

// DayHoursResponse рабочие часы одного дня недели в ответе
type DayHoursResponse struct {
	Weekday int     `json:"weekday"`
	Closed  bool    `json:"closed"`
	Open    *string `json:"open,omitempty"`
	Close   *string `json:"close,omitempty"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	SalonID int64              `json:"salonId"`
	Days    []DayHoursResponse `json:"days"`
}

// toDomainEntries конвертирует HTTP запрос в domain-модели
func (r *UpdateBusinessHoursRequest) toDomainEntries(tenantID, salonID int64) ([]*domain.BusinessHours, error) {
	entries := make([]*domain.BusinessHours, 0, len(r.Days))

	for _, day := range r.Days {
		entry := &domain.BusinessHours{
			TenantID: tenantID,
			SalonID:  &salonID,
			Weekday:  time.Weekday(day.Weekday),
			Closed:   day.Closed,
		}

		if !day.Closed {
			if day.Open == nil || day.Close == nil {
				return nil, types.ErrInvalidTimeFormat
			}

			hours, err := types.ParseInterval(*day.Open, *day.Close)
			if err != nil {
				return nil, err
			}
			entry.Hours = hours
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// fromDomainEntries конвертирует domain-модели в HTTP response
func fromDomainEntries(salonID int64, entries []*domain.BusinessHours) *BusinessHoursResponse {
	response := &BusinessHoursResponse{
		SalonID: salonID,
		Days:    make([]DayHoursResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		day := DayHoursResponse{
			Weekday: int(entry.Weekday),
			Closed:  entry.Closed,
		}

		if !entry.Closed {
			open := entry.Hours.Start.String()
			closeAt := entry.Hours.End.String()
			day.Open = &open
			day.Close = &closeAt
		}

		response.Days = append(response.Days, day)
	}

	return response
}
