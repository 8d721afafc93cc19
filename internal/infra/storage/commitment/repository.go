package commitment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/dbmetrics"
	"github.com/salonhq/scheduling-service/pkg/psqlbuilder"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// pgExclusionViolation код ошибки PostgreSQL для нарушения exclusion constraint
const pgExclusionViolation = "23P01"

var commitmentColumns = []string{
	"id",
	"tenant_id",
	"salon_id",
	"staff_id",
	"kind",
	"customer_id",
	"service_id",
	"description",
	"date",
	"start_minutes",
	"end_minutes",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями расписания (commitments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Внутри транзакции (context с активным TxExecutor) вставка участвует в
// check-then-insert сценарии создания бронирования; exclusion constraint БД
// остаётся страховкой на случай обхода проверки конфликтов.
func (r *Repository) Create(ctx context.Context, c *domain.Commitment) (*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("commitments").
		Columns(
			"tenant_id",
			"salon_id",
			"staff_id",
			"kind",
			"customer_id",
			"service_id",
			"description",
			"date",
			"start_minutes",
			"end_minutes",
			"status",
			"notes",
		).
		Values(
			c.TenantID,
			c.SalonID,
			c.StaffID,
			c.Kind,
			c.CustomerID,
			c.ServiceID,
			c.Description,
			c.Date,
			c.Interval.Start.Minutes(),
			c.Interval.End.Minutes(),
			c.Status,
			c.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrOverlapConstraint
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает запись по ID в пределах арендатора.
// Запись другого арендатора неотличима от несуществующей.
func (r *Repository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(commitmentColumns...).
		From("commitments").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	c, err := scanCommitmentRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommitmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan commitment: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByStaffDay получает записи одного мастера на одну дату.
// Внутри транзакции добавляет FOR UPDATE: строки блокируются до конца
// check-then-insert сценария.
func (r *Repository) ListByStaffDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(commitmentColumns...).
		From("commitments").
		Where(squirrel.Eq{
			"tenant_id": filter.TenantID,
			"staff_id":  filter.StaffID,
			"date":      filter.Date,
		}).
		OrderBy("start_minutes ASC")

	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommitments(rows)
}

// ListBySalon получает записи салона с гибкой фильтрацией (расписание на день,
// по мастеру, по статусу). Неактивные записи исключаются, если не запрошены явно.
func (r *Repository) ListBySalon(ctx context.Context, filter domain.SalonScheduleFilter) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(commitmentColumns...).
		From("commitments").
		Where(squirrel.Eq{
			"tenant_id": filter.TenantID,
			"salon_id":  filter.SalonID,
		})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("staff_id ASC, start_minutes ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, start_minutes DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommitments(rows)
}

// UpdateSchedule переносит запись: дата, интервал и мастер.
// Вызывается только из транзакции сценария переноса после повторной валидации.
func (r *Repository) UpdateSchedule(ctx context.Context, tenantID, id int64, date time.Time, interval types.Interval, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("commitments").
		Set("date", date).
		Set("start_minutes", interval.Start.Minutes()).
		Set("end_minutes", interval.End.Minutes()).
		Set("staff_id", staffID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrOverlapConstraint
		}
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCommitmentNotFound
	}

	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, tenantID, id int64, status domain.CommitmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("commitments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCommitmentNotFound
	}

	return nil
}

// Delete удаляет запись физически. История не сохраняется;
// для освобождения слота с сохранением истории использовать отмену.
func (r *Repository) Delete(ctx context.Context, tenantID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("commitments").
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
		return ErrCommitmentNotFound
	}

	return nil
}

// scanCommitmentRow сканирует одну строку в domain.Commitment
func scanCommitmentRow(scan func(dest ...interface{}) error) (*domain.Commitment, error) {
	var c domain.Commitment
	var startMinutes, endMinutes int
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&c.ID,
		&c.TenantID,
		&c.SalonID,
		&c.StaffID,
		&c.Kind,
		&c.CustomerID,
		&c.ServiceID,
		&c.Description,
		&c.Date,
		&startMinutes,
		&endMinutes,
		&c.Status,
		&c.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Interval = types.Interval{
		Start: types.TimeOfDay(startMinutes),
		End:   types.TimeOfDay(endMinutes),
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// scanCommitments сканирует результаты запроса в слайс записей
func scanCommitments(rows *sql.Rows) ([]*domain.Commitment, error) {
	commitments := make([]*domain.Commitment, 0)

	for rows.Next() {
		c, err := scanCommitmentRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCommitments - scan row: %v", ErrScanRow, err)
		}
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCommitments - rows error: %v", ErrScanRow, err)
	}

	return commitments, nil
}

// inactiveStatusStrings статусы, не занимающие расписание, в виде строк для SQL
func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// isExclusionViolation проверяет, что ошибка - нарушение exclusion constraint PostgreSQL
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation
}
