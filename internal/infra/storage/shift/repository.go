package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/dbmetrics"
	"github.com/salonhq/scheduling-service/pkg/psqlbuilder"
	"github.com/salonhq/scheduling-service/pkg/types"
)

var shiftColumns = []string{
	"id",
	"tenant_id",
	"staff_id",
	"date",
	"start_minutes",
	"end_minutes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий смен персонала
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffDate получает активную смену мастера на дату.
// Отсутствие записи означает, что мастер в этот день не работает.
func (r *Repository) GetByStaffDate(ctx context.Context, tenantID, staffID int64, date time.Time) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns...).
		From("shifts").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"staff_id":  staffID,
			"date":      date,
			"status":    domain.ShiftStatusActive,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	s, err := scanShiftRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffDate - scan shift: %v", ErrScanRow, err)
	}

	return s, nil
}

// Upsert создает или обновляет смену мастера на дату
func (r *Repository) Upsert(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns(
			"tenant_id",
			"staff_id",
			"date",
			"start_minutes",
			"end_minutes",
			"status",
		).
		Values(
			s.TenantID,
			s.StaffID,
			s.Date,
			s.Interval.Start.Minutes(),
			s.Interval.End.Minutes(),
			s.Status,
		).
		Suffix(`ON CONFLICT (tenant_id, staff_id, date)
			DO UPDATE SET start_minutes = EXCLUDED.start_minutes,
				end_minutes = EXCLUDED.end_minutes,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Delete удаляет смену мастера на дату
func (r *Repository) Delete(ctx context.Context, tenantID, staffID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"staff_id":  staffID,
			"date":      date,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

// scanShiftRow сканирует одну строку в domain.Shift
func scanShiftRow(scan func(dest ...interface{}) error) (*domain.Shift, error) {
	var s domain.Shift
	var startMinutes, endMinutes int
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.TenantID,
		&s.StaffID,
		&s.Date,
		&startMinutes,
		&endMinutes,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Interval = types.Interval{
		Start: types.TimeOfDay(startMinutes),
		End:   types.TimeOfDay(endMinutes),
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
