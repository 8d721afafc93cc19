package list_slots

import (
	"net/http"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
)

const (
	msgInvalidSalonID = "некорректный идентификатор салона"
	msgInvalidStaffID = "некорректный идентификатор мастера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// SlotResponse HTTP model публикуемого окна
type SlotResponse struct {
	ID      int64  `json:"id"`
	SalonID int64  `json:"salonId"`
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff/{staffId}/slots?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/slots - Invalid salon id")
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/slots - Invalid staff id")
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	filter := domain.SlotFilter{
		TenantID: tenantID,
		SalonID:  salonID,
		StaffID:  &staffID,
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/staff/{id}/slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.Date = &date
	}

	slots, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /salons/{id}/staff/{id}/slots - Failed to list slots: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &SlotListResponse{
		Slots: make([]*SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, &SlotResponse{
			ID:      s.ID,
			SalonID: s.SalonID,
			StaffID: s.StaffID,
			Date:    s.Date.Format(domain.DateFormat),
			Start:   s.Interval.Start.String(),
			End:     s.Interval.End.String(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
