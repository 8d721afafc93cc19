package set_shift

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
	shiftsService "github.com/salonhq/scheduling-service/internal/service/shifts"
	"github.com/salonhq/scheduling-service/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный идентификатор мастера"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidShift       = "некорректный интервал смены"
)

// SetShiftRequest HTTP request model
type SetShiftRequest struct {
	Date  string `json:"date"`  // "2025-10-15"
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`
}

// ShiftResponse HTTP response model
type ShiftResponse struct {
	ID      int64  `json:"id"`
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Status  string `json:"status"`
}

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/shifts
// Upsert по (staff_id, date): повторный PUT на ту же дату заменяет смену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts - Invalid staff id")
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req SetShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	interval, err := types.ParseInterval(req.Start, req.End)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/shifts - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	saved, err := h.service.Set(r.Context(), &domain.Shift{
		TenantID: tenantID,
		StaffID:  staffID,
		Date:     date,
		Interval: interval,
	})
	if err != nil {
		if errors.Is(err, shiftsService.ErrInvalidShift) {
			h.logger.Warn("PUT /staff/{id}/shifts - Invalid shift: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidShift)
			return
		}

		h.logger.Error("PUT /staff/{id}/shifts - Failed to set shift: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /staff/{id}/shifts - Shift set: staff_id=%d, date=%s, interval=%s",
		staffID, req.Date, saved.Interval)
	handlers.RespondJSON(w, http.StatusOK, &ShiftResponse{
		ID:      saved.ID,
		StaffID: saved.StaffID,
		Date:    saved.Date.Format(domain.DateFormat),
		Start:   saved.Interval.Start.String(),
		End:     saved.Interval.End.String(),
		Status:  string(saved.Status),
	})
}
