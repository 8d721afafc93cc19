package publish_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/scheduling-service/internal/api/middleware"
	publishSlots "github.com/salonhq/scheduling-service/internal/usecase/publish_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *publishSlots.Response
	err  error

	gotReq *publishSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *publishSlots.Request) (*publishSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots", strings.NewReader(body))
	req.Header.Set(middleware.TenantIDHeader, "1")

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &publishSlots.Response{CreatedCount: 4, AttemptedCount: 4}}

	body := `{
		"salonId": 5,
		"staffId": 10,
		"date": "2024-06-03",
		"start": "09:00",
		"end": "09:30",
		"recurrence": "weekly",
		"until": "2024-06-24"
	}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"createdCount":4`)

	require.NotNil(t, uc.gotReq)
	require.NotNil(t, uc.gotReq.Until)
	assert.Equal(t, time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC), *uc.gotReq.Until)
}

func TestHandler_Handle_MalformedUntilFallsBackToDefault(t *testing.T) {
	uc := &fakeUseCase{resp: &publishSlots.Response{CreatedCount: 31, AttemptedCount: 31}}

	body := `{
		"salonId": 5,
		"staffId": 10,
		"date": "2024-06-03",
		"start": "09:00",
		"end": "09:30",
		"recurrence": "daily",
		"until": "garbage"
	}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Nil(t, uc.gotReq.Until, "нечитаемый until должен отброситься, горизонт подставит use case")
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	uc := &fakeUseCase{}

	body := `{"salonId": 5, "staffId": 10, "date": "03.06.2024", "start": "09:00", "end": "09:30", "recurrence": "none"}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandler_Handle_InvalidRange(t *testing.T) {
	uc := &fakeUseCase{err: publishSlots.ErrInvalidRange}

	body := `{
		"salonId": 5,
		"staffId": 10,
		"date": "2024-06-03",
		"start": "09:00",
		"end": "09:30",
		"recurrence": "daily",
		"until": "2024-05-01"
	}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "until")
}
