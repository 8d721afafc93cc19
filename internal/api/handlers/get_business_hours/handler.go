package get_business_hours

import (
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
)

const msgInvalidSalonID = "некорректный идентификатор салона"

// DayHoursResponse рабочие часы одного дня недели
type DayHoursResponse struct {
	Weekday int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Closed  bool    `json:"closed"`
	Open    *string `json:"open,omitempty"`
	Close   *string `json:"close,omitempty"`
	// Default отмечает строку уровня арендатора, действующую как
	// fallback для салонов без собственной конфигурации
	Default bool `json:"default,omitempty"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	SalonID int64              `json:"salonId"`
	Days    []DayHoursResponse `json:"days"`
}

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

// Handle GET /api/v1/salons/{salonId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/business-hours - Invalid salon id")
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	entries, err := h.service.GetWeek(r.Context(), tenantID, salonID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/business-hours - Failed to get hours: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &BusinessHoursResponse{
		SalonID: salonID,
		Days:    make([]DayHoursResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		day := DayHoursResponse{
			Weekday: int(entry.Weekday),
			Closed:  entry.Closed,
			Default: entry.SalonID == nil,
		}

		if !entry.Closed {
			open := entry.Hours.Start.String()
			closeAt := entry.Hours.End.String()
			day.Open = &open
			day.Close = &closeAt
		}

		response.Days = append(response.Days, day)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
