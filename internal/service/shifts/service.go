package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	shiftRepo "github.com/salonhq/scheduling-service/internal/infra/storage/shift"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// Service резолвит рабочий интервал мастера на дату.
// Отсутствие смены означает недоступность мастера независимо от рабочих
// часов салона.
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// Resolve возвращает интервал активной смены мастера на дату.
// Нет смены - ErrNoShift.
func (s *Service) Resolve(ctx context.Context, tenantID, staffID int64, date time.Time) (types.Interval, error) {
	shift, err := s.shiftRepo.GetByStaffDate(ctx, tenantID, staffID, date)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			return types.Interval{}, ErrNoShift
		}
		s.logger.Error("Resolve: failed to get shift for staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return types.Interval{}, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return shift.Interval, nil
}

// Set создает или обновляет смену мастера на дату
func (s *Service) Set(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	if err := shift.Interval.Validate(); err != nil {
		s.logger.Warn("Set: invalid shift interval for staff=%d: %v", shift.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidShift, err)
	}

	if shift.Status == "" {
		shift.Status = domain.ShiftStatusActive
	}

	saved, err := s.shiftRepo.Upsert(ctx, shift)
	if err != nil {
		s.logger.Error("Set: failed to upsert shift for staff=%d date=%s: %v",
			shift.StaffID, shift.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: shift saved for staff=%d date=%s interval=%s",
		saved.StaffID, saved.Date.Format(domain.DateFormat), saved.Interval)
	return saved, nil
}

// Remove удаляет смену мастера на дату
func (s *Service) Remove(ctx context.Context, tenantID, staffID int64, date time.Time) error {
	if err := s.shiftRepo.Delete(ctx, tenantID, staffID, date); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("Remove: failed to delete shift for staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: shift deleted for staff=%d date=%s", staffID, date.Format(domain.DateFormat))
	return nil
}
