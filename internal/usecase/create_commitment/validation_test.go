package create_commitment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:   "valid customer appointment",
			mutate: func(req *Request) {},
		},
		{
			name: "valid internal task",
			mutate: func(req *Request) {
				req.Kind = domain.KindTask
				req.CustomerID = nil
				req.ServiceID = nil
				req.Description = ptr.Ptr("cleanup")
			},
		},
		{
			name:    "zero tenant",
			mutate:  func(req *Request) { req.TenantID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative salon",
			mutate:  func(req *Request) { req.SalonID = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown kind",
			mutate:  func(req *Request) { req.Kind = "block" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "customer without customerId",
			mutate:  func(req *Request) { req.CustomerID = nil },
			wantErr: ErrMissingField,
		},
		{
			name:    "customer without serviceId",
			mutate:  func(req *Request) { req.ServiceID = nil },
			wantErr: ErrMissingField,
		},
		{
			name:    "customer with description",
			mutate:  func(req *Request) { req.Description = ptr.Ptr("haircut") },
			wantErr: ErrInvalidInput,
		},
		{
			name: "task without description",
			mutate: func(req *Request) {
				req.Kind = domain.KindTask
				req.CustomerID = nil
				req.ServiceID = nil
			},
			wantErr: ErrMissingField,
		},
		{
			name: "task with empty description",
			mutate: func(req *Request) {
				req.Kind = domain.KindTask
				req.CustomerID = nil
				req.ServiceID = nil
				req.Description = ptr.Ptr("")
			},
			wantErr: ErrMissingField,
		},
		{
			name: "task with customerId",
			mutate: func(req *Request) {
				req.Kind = domain.KindTask
				req.ServiceID = nil
				req.Description = ptr.Ptr("cleanup")
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "task description too long",
			mutate: func(req *Request) {
				req.Kind = domain.KindTask
				req.CustomerID = nil
				req.ServiceID = nil
				req.Description = ptr.Ptr(strings.Repeat("x", domain.MaxDescriptionLength+1))
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "notes too long",
			mutate:  func(req *Request) { req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveInterval(t *testing.T) {
	t.Run("explicit end", func(t *testing.T) {
		req := validRequest(t)
		req.End = ptr.Ptr(mustTime(t, "11:00"))

		iv, err := resolveInterval(req)
		require.NoError(t, err)
		assert.Equal(t, mustInterval(t, "10:00", "11:00"), iv)
	})

	t.Run("default duration", func(t *testing.T) {
		req := validRequest(t)
		req.End = nil

		iv, err := resolveInterval(req)
		require.NoError(t, err)
		assert.Equal(t, 30, iv.DurationMinutes())
	})

	t.Run("end before start", func(t *testing.T) {
		req := validRequest(t)
		req.End = ptr.Ptr(mustTime(t, "09:30"))

		_, err := resolveInterval(req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("default duration overflows the day", func(t *testing.T) {
		req := validRequest(t)
		req.Start = mustTime(t, "23:45")
		req.End = nil

		_, err := resolveInterval(req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero length interval", func(t *testing.T) {
		req := validRequest(t)
		req.End = ptr.Ptr(req.Start)

		_, err := resolveInterval(req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
