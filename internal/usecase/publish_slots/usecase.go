package publish_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// UseCase сценарий пакетной публикации окон записи.
// Правило повторения разворачивается в список дат, каждая дата
// вставляется независимо: частичный успех допустим, результат
// сообщает created/attempted вместо отката пакета.
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр сценария
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет сценарий публикации окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublishSlots: tenant=%d, salon=%d, staff=%d, date=%s, recurrence=%s",
		req.TenantID, req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.Recurrence)

	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PublishSlots: validation failed: %v", err)
		return nil, err
	}

	until := req.Date.AddDate(0, domain.DefaultPublishHorizonMonths, 0)
	if req.Until != nil {
		until = *req.Until
	}

	if until.Before(req.Date) {
		uc.logger.Warn("PublishSlots: until %s is before start date %s",
			until.Format(domain.DateFormat), req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	dates := expandDates(req.Date, until, req.Recurrence)

	created := 0
	for _, date := range dates {
		_, err := uc.slotRepo.Create(ctx, &domain.AvailableSlot{
			TenantID: req.TenantID,
			SalonID:  req.SalonID,
			StaffID:  req.StaffID,
			Date:     date,
			Interval: interval,
		})
		if err != nil {
			uc.logger.Error("PublishSlots: failed to create slot for %s: %v", date.Format(domain.DateFormat), err)
			continue
		}
		created++
	}

	uc.logger.Info("PublishSlots: created %d of %d slots", created, len(dates))

	return &Response{
		CreatedCount:   created,
		AttemptedCount: len(dates),
	}, nil
}

// validateRequest валидирует входные данные и строит интервал окна
func validateRequest(req *Request) (types.Interval, error) {
	if req.TenantID <= 0 {
		return types.Interval{}, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return types.Interval{}, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return types.Interval{}, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return types.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Recurrence.Valid() {
		return types.Interval{}, fmt.Errorf("%w: unknown recurrence %q", ErrInvalidInput, req.Recurrence)
	}

	interval, err := types.NewInterval(req.Start, req.End)
	if err != nil {
		return types.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}

// expandDates разворачивает правило повторения в список дат от start
// до until включительно
func expandDates(start, until time.Time, rule domain.Recurrence) []time.Time {
	switch rule {
	case domain.RecurrenceNone:
		return []time.Time{start}
	case domain.RecurrenceDaily:
		return step(start, until, 1, nil)
	case domain.RecurrenceWeekly:
		return step(start, until, 7, nil)
	case domain.RecurrenceWeekdays:
		return step(start, until, 1, func(d time.Time) bool {
			wd := d.Weekday()
			return wd != time.Saturday && wd != time.Sunday
		})
	}
	return nil
}

// step идет от start до until включительно с шагом в днях,
// опционально фильтруя даты
func step(start, until time.Time, days int, keep func(time.Time) bool) []time.Time {
	dates := make([]time.Time, 0)
	for d := start; !d.After(until); d = d.AddDate(0, 0, days) {
		if keep != nil && !keep(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
