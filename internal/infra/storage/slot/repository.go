package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/dbmetrics"
	"github.com/salonhq/scheduling-service/pkg/psqlbuilder"
	"github.com/salonhq/scheduling-service/pkg/types"
)

var slotColumns = []string{
	"id",
	"tenant_id",
	"salon_id",
	"staff_id",
	"date",
	"start_minutes",
	"end_minutes",
	"created_at",
}

// Repository репозиторий публикуемых окон записи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот.
// Пакетная публикация вызывает Create на каждую дату независимо:
// частичный успех допустим, откат пакета не выполняется.
func (r *Repository) Create(ctx context.Context, s *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_slots").
		Columns(
			"tenant_id",
			"salon_id",
			"staff_id",
			"date",
			"start_minutes",
			"end_minutes",
		).
		Values(
			s.TenantID,
			s.SalonID,
			s.StaffID,
			s.Date,
			s.Interval.Start.Minutes(),
			s.Interval.End.Minutes(),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// List получает слоты салона с фильтрацией по мастеру и дате
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("available_slots").
		Where(squirrel.Eq{
			"tenant_id": filter.TenantID,
			"salon_id":  filter.SalonID,
		}).
		OrderBy("date ASC, start_minutes ASC")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailableSlot, 0)
	for rows.Next() {
		var s domain.AvailableSlot
		var startMinutes, endMinutes int
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.TenantID,
			&s.SalonID,
			&s.StaffID,
			&s.Date,
			&startMinutes,
			&endMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		s.Interval = types.Interval{
			Start: types.TimeOfDay(startMinutes),
			End:   types.TimeOfDay(endMinutes),
		}
		s.CreatedAt = createdAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Delete удаляет слот по ID в пределах арендатора
func (r *Repository) Delete(ctx context.Context, tenantID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("available_slots").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
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
		return ErrSlotNotFound
	}

	return nil
}
