package businesshours

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

var hoursColumns = []string{
	"id",
	"tenant_id",
	"salon_id",
	"weekday",
	"closed",
	"open_minutes",
	"close_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек рабочих часов салонов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForWeekday получает рабочие часы салона на день недели.
// Ищет запись салона, при её отсутствии - дефолт арендатора (salon_id IS NULL).
// Отсутствие обеих записей означает, что салон закрыт в этот день.
func (r *Repository) GetForWeekday(ctx context.Context, tenantID, salonID int64, weekday time.Weekday) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Запись салона сортируется раньше дефолта арендатора: NULLS LAST
	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "weekday": int(weekday)}).
		Where(squirrel.Or{
			squirrel.Eq{"salon_id": salonID},
			squirrel.Eq{"salon_id": nil},
		}).
		OrderBy("salon_id ASC NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	hours, err := scanHoursRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ListBySalon получает все записи рабочих часов салона (без дефолтов арендатора)
func (r *Repository) ListBySalon(ctx context.Context, tenantID, salonID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Вместе со строками салона возвращаются строки уровня арендатора:
	// они действуют как fallback для дней без собственной конфигурации
	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.And{
			squirrel.Eq{"tenant_id": tenantID},
			squirrel.Or{
				squirrel.Eq{"salon_id": salonID},
				squirrel.Eq{"salon_id": nil},
			},
		}).
		OrderBy("weekday ASC, salon_id ASC NULLS LAST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		hours, err := scanHoursRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}
		result = append(result, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или обновляет рабочие часы салона на день недели
func (r *Repository) Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var openMinutes, closeMinutes interface{}
	if !hours.Closed {
		openMinutes = hours.Hours.Start.Minutes()
		closeMinutes = hours.Hours.End.Minutes()
	}

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns(
			"tenant_id",
			"salon_id",
			"weekday",
			"closed",
			"open_minutes",
			"close_minutes",
		).
		Values(
			hours.TenantID,
			hours.SalonID,
			int(hours.Weekday),
			hours.Closed,
			openMinutes,
			closeMinutes,
		).
		Suffix(`ON CONFLICT (tenant_id, salon_id, weekday)
			DO UPDATE SET closed = EXCLUDED.closed,
				open_minutes = EXCLUDED.open_minutes,
				close_minutes = EXCLUDED.close_minutes,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}

// scanHoursRow сканирует одну строку в domain.BusinessHours
func scanHoursRow(scan func(dest ...interface{}) error) (*domain.BusinessHours, error) {
	var hours domain.BusinessHours
	var weekday int
	var openMinutes, closeMinutes sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&hours.ID,
		&hours.TenantID,
		&hours.SalonID,
		&weekday,
		&hours.Closed,
		&openMinutes,
		&closeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hours.Weekday = time.Weekday(weekday)
	if openMinutes.Valid && closeMinutes.Valid {
		hours.Hours = types.Interval{
			Start: types.TimeOfDay(openMinutes.Int64),
			End:   types.TimeOfDay(closeMinutes.Int64),
		}
	}
	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}
