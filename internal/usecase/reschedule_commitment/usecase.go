package reschedule_commitment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	shiftsService "github.com/salonhq/scheduling-service/internal/service/shifts"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// UseCase сценарий переноса записи расписания.
// Проходит тот же конвейер проверок, что и создание, но проверка
// конфликтов исключает саму переносимую запись: перенос на тот же
// интервал всегда успешен.
type UseCase struct {
	commitmentRepo CommitmentRepository
	calendar       CalendarService
	shifts         ShiftService
	conflicts      ConflictDetector
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр сценария
func NewUseCase(
	commitmentRepo CommitmentRepository,
	calendar CalendarService,
	shifts ShiftService,
	conflicts ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		commitmentRepo: commitmentRepo,
		calendar:       calendar,
		shifts:         shifts,
		conflicts:      conflicts,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет сценарий переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleCommitment: tenant=%d, id=%d", req.TenantID, req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleCommitment: validation failed: %v", err)
		return nil, err
	}

	existing, err := uc.commitmentRepo.GetByID(ctx, req.TenantID, req.ID)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			uc.logger.Warn("RescheduleCommitment: commitment id=%d not found for tenant=%d", req.ID, req.TenantID)
			return nil, ErrNotFound
		}
		uc.logger.Error("RescheduleCommitment: failed to get commitment: %v", err)
		return nil, fmt.Errorf("%w: failed to get commitment: %v", ErrInternal, err)
	}

	date, staffID, interval, err := mergeSchedule(existing, req)
	if err != nil {
		uc.logger.Warn("RescheduleCommitment: invalid target interval: %v", err)
		return nil, err
	}

	day, err := uc.calendar.Resolve(ctx, req.TenantID, existing.SalonID, date)
	if err != nil {
		uc.logger.Error("RescheduleCommitment: failed to resolve business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
	}

	if !day.Open {
		uc.logger.Warn("RescheduleCommitment: salon=%d closed on %s", existing.SalonID, date.Format(domain.DateFormat))
		return nil, &OutsideHoursError{Closed: true}
	}

	if !day.Hours.Contains(interval) {
		uc.logger.Warn("RescheduleCommitment: interval %s outside business hours %s", interval, day.Hours)
		return nil, &OutsideHoursError{Open: day.Hours}
	}

	shift, err := uc.shifts.Resolve(ctx, req.TenantID, staffID, date)
	if err != nil {
		if errors.Is(err, shiftsService.ErrNoShift) {
			uc.logger.Warn("RescheduleCommitment: staff=%d has no shift on %s", staffID, date.Format(domain.DateFormat))
			return nil, &OutsideShiftError{NoShift: true}
		}
		uc.logger.Error("RescheduleCommitment: failed to resolve shift: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve shift: %v", ErrInternal, err)
	}

	if !shift.Contains(interval) {
		uc.logger.Warn("RescheduleCommitment: interval %s outside shift %s of staff=%d", interval, shift, staffID)
		return nil, &OutsideShiftError{Shift: shift}
	}

	var result *domain.Commitment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		excludeID := req.ID

		conflict, err := uc.conflicts.FindConflict(txCtx, req.TenantID, staffID, date, interval, &excludeID)
		if err != nil {
			uc.logger.Error("RescheduleCommitment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if conflict != nil {
			uc.logger.Warn("RescheduleCommitment: interval %s conflicts with commitment id=%d", interval, conflict.ID)
			return &ConflictError{CommitmentID: conflict.ID, Interval: conflict.Interval}
		}

		if err := uc.commitmentRepo.UpdateSchedule(txCtx, req.TenantID, req.ID, date, interval, staffID); err != nil {
			if errors.Is(err, commitmentRepo.ErrOverlapConstraint) {
				uc.logger.Warn("RescheduleCommitment: storage constraint rejected overlapping update")
				return ErrTimeConflict
			}
			if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
				return ErrNotFound
			}
			uc.logger.Error("RescheduleCommitment: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		updated, err := uc.commitmentRepo.GetByID(txCtx, req.TenantID, req.ID)
		if err != nil {
			uc.logger.Error("RescheduleCommitment: failed to reread commitment: %v", err)
			return fmt.Errorf("%w: failed to reread commitment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleCommitment: successfully rescheduled commitment id=%d to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.Interval)

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.Date == nil && req.Start == nil && req.End == nil && req.StaffID == nil {
		return fmt.Errorf("%w: at least one field to change is required", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}

// mergeSchedule накладывает заполненные поля запроса на сохраненную запись
func mergeSchedule(existing *domain.Commitment, req *Request) (time.Time, int64, types.Interval, error) {
	date := existing.Date
	if req.Date != nil {
		date = *req.Date
	}

	staffID := existing.StaffID
	if req.StaffID != nil {
		staffID = *req.StaffID
	}

	start := existing.Interval.Start
	if req.Start != nil {
		start = *req.Start
	}

	end := existing.Interval.End
	if req.End != nil {
		end = *req.End
	}

	interval, err := types.NewInterval(start, end)
	if err != nil {
		return time.Time{}, 0, types.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, staffID, interval, nil
}
