package delete_shift

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
	shiftsService "github.com/salonhq/scheduling-service/internal/service/shifts"
)

const (
	msgInvalidStaffID = "некорректный идентификатор мастера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgShiftNotFound  = "смена не найдена"
)

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

// Handle DELETE /api/v1/staff/{staffId}/shifts?date=
// После удаления смены мастер недоступен в эту дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/shifts - Invalid staff id")
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/shifts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Remove(r.Context(), tenantID, staffID, date); err != nil {
		if errors.Is(err, shiftsService.ErrShiftNotFound) {
			h.logger.Warn("DELETE /staff/{id}/shifts - Shift not found: staff_id=%d, date=%s",
				staffID, date.Format(domain.DateFormat))
			handlers.RespondNotFound(w, msgShiftNotFound)
			return
		}

		h.logger.Error("DELETE /staff/{id}/shifts - Failed to remove shift: staff_id=%d, error=%v",
			staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/{id}/shifts - Shift removed: staff_id=%d, date=%s",
		staffID, date.Format(domain.DateFormat))
	handlers.RespondNoContent(w)
}
