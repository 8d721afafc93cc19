package shifts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/domain"
	shiftRepo "github.com/salonhq/scheduling-service/internal/infra/storage/shift"
	"github.com/salonhq/scheduling-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeShiftRepo struct {
	shifts map[string]*domain.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func shiftKey(tenantID, staffID int64, date time.Time) string {
	return fmt.Sprintf("%d/%d/%s", tenantID, staffID, date.Format(domain.DateFormat))
}

func (f *fakeShiftRepo) GetByStaffDate(_ context.Context, tenantID, staffID int64, date time.Time) (*domain.Shift, error) {
	s, ok := f.shifts[shiftKey(tenantID, staffID, date)]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) Upsert(_ context.Context, s *domain.Shift) (*domain.Shift, error) {
	stored := *s
	stored.ID = int64(len(f.shifts) + 1)
	f.shifts[shiftKey(s.TenantID, s.StaffID, s.Date)] = &stored
	return &stored, nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, tenantID, staffID int64, date time.Time) error {
	key := shiftKey(tenantID, staffID, date)
	if _, ok := f.shifts[key]; !ok {
		return shiftRepo.ErrShiftNotFound
	}
	delete(f.shifts, key)
	return nil
}

func mustInterval(t *testing.T, start, end string) types.Interval {
	t.Helper()
	iv, err := types.ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestService_ResolveAndSet(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("no shift on date", func(t *testing.T) {
		_, err := svc.Resolve(ctx, 1, 10, date)
		assert.ErrorIs(t, err, ErrNoShift)
	})

	t.Run("set then resolve", func(t *testing.T) {
		saved, err := svc.Set(ctx, &domain.Shift{
			TenantID: 1,
			StaffID:  10,
			Date:     date,
			Interval: mustInterval(t, "10:00", "17:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ShiftStatusActive, saved.Status)

		interval, err := svc.Resolve(ctx, 1, 10, date)
		require.NoError(t, err)
		assert.Equal(t, mustInterval(t, "10:00", "17:00"), interval)
	})

	t.Run("set replaces existing shift", func(t *testing.T) {
		_, err := svc.Set(ctx, &domain.Shift{
			TenantID: 1,
			StaffID:  10,
			Date:     date,
			Interval: mustInterval(t, "12:00", "18:00"),
		})
		require.NoError(t, err)

		interval, err := svc.Resolve(ctx, 1, 10, date)
		require.NoError(t, err)
		assert.Equal(t, mustInterval(t, "12:00", "18:00"), interval)
	})

	t.Run("invalid interval rejected", func(t *testing.T) {
		_, err := svc.Set(ctx, &domain.Shift{
			TenantID: 1,
			StaffID:  10,
			Date:     date,
			Interval: types.Interval{Start: 600, End: 600},
		})
		assert.ErrorIs(t, err, ErrInvalidShift)
	})

	t.Run("foreign tenant does not see the shift", func(t *testing.T) {
		_, err := svc.Resolve(ctx, 2, 10, date)
		assert.ErrorIs(t, err, ErrNoShift)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, 1, 10, date))

		_, err := svc.Resolve(ctx, 1, 10, date)
		assert.ErrorIs(t, err, ErrNoShift)

		assert.ErrorIs(t, svc.Remove(ctx, 1, 10, date), ErrShiftNotFound)
	})
}
