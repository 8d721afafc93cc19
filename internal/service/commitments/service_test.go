package commitments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/domain"
	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
	"github.com/salonhq/scheduling-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID map[int64]*domain.Commitment
}

func newFakeRepo(commitments ...*domain.Commitment) *fakeRepo {
	repo := &fakeRepo{byID: make(map[int64]*domain.Commitment)}
	for _, c := range commitments {
		repo.byID[c.ID] = c
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, tenantID, id int64) (*domain.Commitment, error) {
	c, ok := f.byID[id]
	if !ok || c.TenantID != tenantID {
		return nil, commitmentRepo.ErrCommitmentNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListBySalon(_ context.Context, filter domain.SalonScheduleFilter) ([]*domain.Commitment, error) {
	result := make([]*domain.Commitment, 0)
	for _, c := range f.byID {
		if c.TenantID != filter.TenantID || c.SalonID != filter.SalonID {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && !c.IsActive() {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, tenantID, id int64, status domain.CommitmentStatus) error {
	c, ok := f.byID[id]
	if !ok || c.TenantID != tenantID {
		return commitmentRepo.ErrCommitmentNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, tenantID, id int64) error {
	c, ok := f.byID[id]
	if !ok || c.TenantID != tenantID {
		return commitmentRepo.ErrCommitmentNotFound
	}
	delete(f.byID, id)
	return nil
}

func scheduledCommitment(id int64) *domain.Commitment {
	return &domain.Commitment{
		ID:       id,
		TenantID: 1,
		SalonID:  5,
		StaffID:  10,
		Kind:     domain.KindCustomer,
		Date:     time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Interval: types.Interval{Start: 10 * 60, End: 10*60 + 30},
		Status:   domain.StatusScheduled,
	}
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("legal transition updates the row", func(t *testing.T) {
		repo := newFakeRepo(scheduledCommitment(1))
		svc := NewService(repo, nopLogger{})

		err := svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
	})

	t.Run("repeating the same status is idempotent", func(t *testing.T) {
		repo := newFakeRepo(scheduledCommitment(1))
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "confirmed"}))
		require.NoError(t, svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "confirmed"}))
		assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
	})

	t.Run("terminal status rejects further transitions", func(t *testing.T) {
		c := scheduledCommitment(1)
		c.Status = domain.StatusCancelled
		svc := NewService(newFakeRepo(c), nopLogger{})

		err := svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("skipping confirmation is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(scheduledCommitment(1)), nopLogger{})

		err := svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "completed"})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(scheduledCommitment(1)), nopLogger{})

		err := svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 1, Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		err := svc.SetStatus(ctx, 42, &models.SetStatusRequest{TenantID: 1, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrCommitmentNotFound)
	})

	t.Run("foreign tenant row is invisible", func(t *testing.T) {
		svc := NewService(newFakeRepo(scheduledCommitment(1)), nopLogger{})

		err := svc.SetStatus(ctx, 1, &models.SetStatusRequest{TenantID: 2, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrCommitmentNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo(scheduledCommitment(1))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(ctx, 1, 1))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(ctx, 1, 1), ErrCommitmentNotFound)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(scheduledCommitment(7)), nopLogger{})

	resp, err := svc.GetByID(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "10:00", resp.Start)
	assert.Equal(t, "10:30", resp.End)

	_, err = svc.GetByID(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrCommitmentNotFound)
}
