package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	calendarService "github.com/salonhq/scheduling-service/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSalonID     = "некорректный идентификатор салона"
	msgInvalidHours       = "некорректная конфигурация рабочих часов"
	msgEmptyDays          = "список дней не может быть пустым"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/business-hours - Invalid salon id")
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Days) == 0 {
		h.logger.Warn("PUT /salons/{id}/business-hours - Empty days list: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgEmptyDays)
		return
	}

	entries, err := req.toDomainEntries(tenantID, salonID)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/business-hours - Failed to parse hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	saved, err := h.service.SetWeek(r.Context(), entries)
	if err != nil {
		if errors.Is(err, calendarService.ErrInvalidHours) {
			h.logger.Warn("PUT /salons/{id}/business-hours - Invalid hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)
			return
		}

		h.logger.Error("PUT /salons/{id}/business-hours - Failed to update hours: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /salons/{id}/business-hours - Hours updated: salon_id=%d, days=%d",
		salonID, len(saved))
	handlers.RespondJSON(w, http.StatusOK, fromDomainEntries(salonID, saved))
}
