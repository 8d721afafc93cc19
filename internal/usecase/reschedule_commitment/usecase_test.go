package reschedule_commitment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/domain"
	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	"github.com/salonhq/scheduling-service/pkg/ptr"
	"github.com/salonhq/scheduling-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	stored *domain.Commitment

	updateErr error
}

func (f *fakeRepo) GetByID(_ context.Context, tenantID, id int64) (*domain.Commitment, error) {
	if f.stored == nil || f.stored.ID != id || f.stored.TenantID != tenantID {
		return nil, commitmentRepo.ErrCommitmentNotFound
	}
	c := *f.stored
	return &c, nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, tenantID, id int64, date time.Time, interval types.Interval, staffID int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.stored == nil || f.stored.ID != id || f.stored.TenantID != tenantID {
		return commitmentRepo.ErrCommitmentNotFound
	}
	f.stored.Date = date
	f.stored.Interval = interval
	f.stored.StaffID = staffID
	f.stored.UpdatedAt = time.Now()
	return nil
}

type fakeCalendar struct {
	day domain.DayHours
}

func (f *fakeCalendar) Resolve(_ context.Context, _, _ int64, _ time.Time) (domain.DayHours, error) {
	return f.day, nil
}

type fakeShifts struct {
	shift types.Interval
	err   error
}

func (f *fakeShifts) Resolve(_ context.Context, _, _ int64, _ time.Time) (types.Interval, error) {
	return f.shift, f.err
}

type fakeConflicts struct {
	conflict *domain.Commitment

	gotCandidate types.Interval
	gotExcludeID *int64
	gotStaffID   int64
	gotDate      time.Time
}

func (f *fakeConflicts) FindConflict(_ context.Context, _, staffID int64, date time.Time, candidate types.Interval, excludeID *int64) (*domain.Commitment, error) {
	f.gotCandidate = candidate
	f.gotExcludeID = excludeID
	f.gotStaffID = staffID
	f.gotDate = date
	return f.conflict, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustInterval(t *testing.T, start, end string) types.Interval {
	t.Helper()
	iv, err := types.ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func mustTime(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	tod, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func storedCommitment(t *testing.T) *domain.Commitment {
	t.Helper()
	return &domain.Commitment{
		ID:         7,
		TenantID:   1,
		SalonID:    5,
		StaffID:    10,
		Kind:       domain.KindCustomer,
		CustomerID: ptr.Ptr(int64(100)),
		ServiceID:  ptr.Ptr(int64(200)),
		Date:       time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Interval:   mustInterval(t, "10:00", "10:30"),
		Status:     domain.StatusScheduled,
	}
}

func newUseCase(repo *fakeRepo, cal *fakeCalendar, shifts *fakeShifts, conflicts *fakeConflicts) *UseCase {
	return NewUseCase(repo, cal, shifts, conflicts, fakeTxManager{}, nopLogger{})
}

func openCalendar(t *testing.T) *fakeCalendar {
	t.Helper()
	return &fakeCalendar{day: domain.DayHours{Open: true, Hours: mustInterval(t, "09:00", "18:00")}}
}

func TestUseCase_Execute_MoveTime(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	conflicts := &fakeConflicts{}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, conflicts)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "11:00")),
		End:      ptr.Ptr(mustTime(t, "11:30")),
	})
	require.NoError(t, err)

	assert.Equal(t, mustTime(t, "11:00"), resp.Start)
	assert.Equal(t, mustTime(t, "11:30"), resp.End)
	// Незаполненные поля остаются как были
	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), resp.Date)

	require.NotNil(t, conflicts.gotExcludeID)
	assert.Equal(t, int64(7), *conflicts.gotExcludeID)
}

func TestUseCase_Execute_SameInterval(t *testing.T) {
	// Перенос на тот же интервал успешен: запись не конфликтует сама с собой
	repo := &fakeRepo{stored: storedCommitment(t)}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, &fakeConflicts{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "10:00")),
		End:      ptr.Ptr(mustTime(t, "10:30")),
	})
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, "10:00"), resp.Start)
}

func TestUseCase_Execute_PartialMerge(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	conflicts := &fakeConflicts{}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, conflicts)

	newDate := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	newStaff := int64(11)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Date:     &newDate,
		StaffID:  &newStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, newStaff, resp.StaffID)
	// Интервал не передан и сохранен из записи
	assert.Equal(t, mustTime(t, "10:00"), resp.Start)
	assert.Equal(t, mustTime(t, "10:30"), resp.End)

	assert.Equal(t, newStaff, conflicts.gotStaffID)
	assert.Equal(t, newDate, conflicts.gotDate)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, openCalendar(t), &fakeShifts{}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       404,
		Start:    ptr.Ptr(mustTime(t, "11:00")),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUseCase_Execute_ForeignTenant(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 2,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "11:00")),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	conflicts := &fakeConflicts{conflict: &domain.Commitment{
		ID:       8,
		Interval: mustInterval(t, "11:00", "12:00"),
	}}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, conflicts)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "11:30")),
		End:      ptr.Ptr(mustTime(t, "12:30")),
	})
	require.ErrorIs(t, err, ErrTimeConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(8), conflictErr.CommitmentID)

	// Запись не изменилась
	assert.Equal(t, mustInterval(t, "10:00", "10:30"), repo.stored.Interval)
}

func TestUseCase_Execute_OutsideBusinessHours(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "17:45")),
		End:      ptr.Ptr(mustTime(t, "18:15")),
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestUseCase_Execute_MergedIntervalInvalid(t *testing.T) {
	// Новое начало позже сохраненного конца
	repo := &fakeRepo{stored: storedCommitment(t)}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "11:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_EmptyRequest(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t)}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{TenantID: 1, ID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_StorageOverlapConstraint(t *testing.T) {
	repo := &fakeRepo{stored: storedCommitment(t), updateErr: commitmentRepo.ErrOverlapConstraint}
	uc := newUseCase(repo, openCalendar(t), &fakeShifts{shift: mustInterval(t, "09:00", "18:00")}, &fakeConflicts{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID: 1,
		ID:       7,
		Start:    ptr.Ptr(mustTime(t, "12:00")),
		End:      ptr.Ptr(mustTime(t, "12:30")),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}
