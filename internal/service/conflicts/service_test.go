package conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/ptr"
	"github.com/salonhq/scheduling-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCommitmentRepo struct {
	commitments []*domain.Commitment
}

func (f *fakeCommitmentRepo) ListByStaffDay(_ context.Context, filter domain.StaffDayFilter) ([]*domain.Commitment, error) {
	result := make([]*domain.Commitment, 0)
	for _, c := range f.commitments {
		if c.TenantID != filter.TenantID || c.StaffID != filter.StaffID || !c.Date.Equal(filter.Date) {
			continue
		}
		if filter.ExcludeID != nil && c.ID == *filter.ExcludeID {
			continue
		}
		if filter.ActiveOnly && !c.IsActive() {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func mustInterval(t *testing.T, start, end string) types.Interval {
	t.Helper()
	iv, err := types.ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestService_FindConflict(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Commitment{
		{
			ID:       1,
			TenantID: 1,
			StaffID:  10,
			Kind:     domain.KindCustomer,
			Date:     date,
			Interval: types.Interval{Start: 10 * 60, End: 10*60 + 30}, // 10:00-10:30
			Status:   domain.StatusScheduled,
		},
		{
			ID:       2,
			TenantID: 1,
			StaffID:  10,
			Kind:     domain.KindTask,
			Date:     date,
			Interval: types.Interval{Start: 12 * 60, End: 13 * 60}, // 12:00-13:00
			Status:   domain.StatusConfirmed,
		},
		{
			ID:       3,
			TenantID: 1,
			StaffID:  10,
			Kind:     domain.KindCustomer,
			Date:     date,
			Interval: types.Interval{Start: 14 * 60, End: 15 * 60},
			Status:   domain.StatusCancelled, // отменённая запись не занимает время
		},
	}

	svc := NewService(&fakeCommitmentRepo{commitments: existing}, nopLogger{})
	ctx := context.Background()

	t.Run("overlapping appointment is reported", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 10, date, mustInterval(t, "10:15", "10:45"), nil)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(1), conflict.ID)
	})

	t.Run("internal task occupies the same timeline", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 10, date, mustInterval(t, "12:30", "12:45"), nil)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(2), conflict.ID)
	})

	t.Run("back-to-back interval does not conflict", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 10, date, mustInterval(t, "10:30", "11:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("cancelled commitment frees its interval", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 10, date, mustInterval(t, "14:00", "15:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("exclude id skips the commitment itself", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 10, date, mustInterval(t, "10:00", "10:30"), ptr.Ptr(int64(1)))
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("other staff timeline is independent", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 1, 99, date, mustInterval(t, "10:00", "10:30"), nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("other tenant rows are invisible", func(t *testing.T) {
		conflict, err := svc.FindConflict(ctx, 2, 10, date, mustInterval(t, "10:00", "10:30"), nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})
}
