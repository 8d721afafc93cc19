package create_commitment

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhq/scheduling-service/internal/domain"
	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	shiftsService "github.com/salonhq/scheduling-service/internal/service/shifts"
)

// UseCase сценарий создания записи расписания.
// Единственный путь создания: все проверки (рабочие часы - смена - конфликты)
// проходят здесь, проверка конфликтов и вставка - в одной SERIALIZABLE
// транзакции.
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

// Execute выполняет сценарий создания записи.
// Порядок проверок fail-fast: рабочие часы, затем смена, затем конфликты.
// Первая непройденная проверка завершает сценарий без побочных эффектов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCommitment: tenant=%d, salon=%d, staff=%d, kind=%s, date=%s, start=%s",
		req.TenantID, req.SalonID, req.StaffID, req.Kind, req.Date.Format(domain.DateFormat), req.Start)

	// 1. Валидация входных данных (до обращения к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCommitment: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем интервал: явный конец или фиксированные 30 минут
	interval, err := resolveInterval(req)
	if err != nil {
		uc.logger.Warn("CreateCommitment: invalid interval: %v", err)
		return nil, err
	}

	// 3. Рабочие часы салона
	day, err := uc.calendar.Resolve(ctx, req.TenantID, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("CreateCommitment: failed to resolve business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
	}

	if !day.Open {
		uc.logger.Warn("CreateCommitment: salon=%d closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, &OutsideHoursError{Closed: true}
	}

	if !day.Hours.Contains(interval) {
		uc.logger.Warn("CreateCommitment: interval %s outside business hours %s", interval, day.Hours)
		return nil, &OutsideHoursError{Open: day.Hours}
	}

	// 4. Смена мастера
	shift, err := uc.shifts.Resolve(ctx, req.TenantID, req.StaffID, req.Date)
	if err != nil {
		if errors.Is(err, shiftsService.ErrNoShift) {
			uc.logger.Warn("CreateCommitment: staff=%d has no shift on %s", req.StaffID, req.Date.Format(domain.DateFormat))
			return nil, &OutsideShiftError{NoShift: true}
		}
		uc.logger.Error("CreateCommitment: failed to resolve shift: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve shift: %v", ErrInternal, err)
	}

	if !shift.Contains(interval) {
		uc.logger.Warn("CreateCommitment: interval %s outside shift %s of staff=%d", interval, shift, req.StaffID)
		return nil, &OutsideShiftError{Shift: shift}
	}

	var result *domain.Commitment

	// 5-6. Проверка конфликтов и вставка в одной SERIALIZABLE транзакции:
	// две конкурентные брони на пересекающиеся интервалы не могут обе пройти
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := uc.conflicts.FindConflict(txCtx, req.TenantID, req.StaffID, req.Date, interval, nil)
		if err != nil {
			uc.logger.Error("CreateCommitment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if conflict != nil {
			uc.logger.Warn("CreateCommitment: interval %s conflicts with commitment id=%d", interval, conflict.ID)
			return &ConflictError{CommitmentID: conflict.ID, Interval: conflict.Interval}
		}

		created, err := uc.commitmentRepo.Create(txCtx, &domain.Commitment{
			TenantID:    req.TenantID,
			SalonID:     req.SalonID,
			StaffID:     req.StaffID,
			Kind:        req.Kind,
			CustomerID:  req.CustomerID,
			ServiceID:   req.ServiceID,
			Description: req.Description,
			Date:        req.Date,
			Interval:    interval,
			Status:      domain.StatusScheduled,
			Notes:       req.Notes,
		})
		if err != nil {
			// Exclusion constraint - страховка хранилища от гонки,
			// которую не перехватила проверка выше
			if errors.Is(err, commitmentRepo.ErrOverlapConstraint) {
				uc.logger.Warn("CreateCommitment: storage constraint rejected overlapping insert")
				return ErrTimeConflict
			}
			uc.logger.Error("CreateCommitment: failed to create commitment: %v", err)
			return fmt.Errorf("%w: failed to create commitment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateCommitment: successfully created commitment id=%d", result.ID)

	return fromDomain(result), nil
}
