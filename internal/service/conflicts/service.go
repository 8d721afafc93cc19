package conflicts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("conflicts.service: internal error")

// Service детектор пересечений в расписании мастера.
// Клиентские записи и внутренние задачи живут на одной временной шкале
// и проверяются одним запросом.
type Service struct {
	commitmentRepo CommitmentRepository
	logger         Logger
}

// NewService создает новый экземпляр детектора конфликтов
func NewService(commitmentRepo CommitmentRepository, logger Logger) *Service {
	return &Service{
		commitmentRepo: commitmentRepo,
		logger:         logger,
	}
}

// FindConflict возвращает первую активную запись мастера на дату,
// пересекающуюся с кандидатом, или nil, если пересечений нет.
// excludeID исключает запись из проверки (перенос записи на её же время
// не конфликтует сам с собой).
//
// Внутри транзакции выборка блокирует строки мастера на дату (FOR UPDATE),
// поэтому параллельный конкурирующий сценарий дождётся завершения текущего.
func (s *Service) FindConflict(
	ctx context.Context,
	tenantID, staffID int64,
	date time.Time,
	candidate types.Interval,
	excludeID *int64,
) (*domain.Commitment, error) {
	commitments, err := s.commitmentRepo.ListByStaffDay(ctx, domain.StaffDayFilter{
		TenantID:   tenantID,
		StaffID:    staffID,
		Date:       date,
		ExcludeID:  excludeID,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("FindConflict: failed to list commitments for staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: FindConflict - repository error: %v", ErrInternal, err)
	}

	for _, c := range commitments {
		if !c.IsActive() {
			continue
		}
		if candidate.Overlaps(c.Interval) {
			return c, nil
		}
	}

	return nil, nil
}
