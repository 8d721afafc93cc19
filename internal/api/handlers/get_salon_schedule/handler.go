package get_salon_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
	commitmentsService "github.com/salonhq/scheduling-service/internal/service/commitments"
	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
)

const (
	msgInvalidSalonID = "некорректный идентификатор салона"
	msgInvalidStaffID = "некорректный параметр staffId"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "неизвестный статус записи"
)

// CommitmentResponse HTTP model записи в расписании салона
type CommitmentResponse struct {
	ID          int64   `json:"id"`
	SalonID     int64   `json:"salonId"`
	StaffID     int64   `json:"staffId"`
	Kind        string  `json:"kind"`
	CustomerID  *int64  `json:"customerId,omitempty"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Commitments []*CommitmentResponse `json:"commitments"`
	Total       int                   `json:"total"`
}

type Handler struct {
	service CommitmentService
	logger  Logger
}

func NewHandler(service CommitmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/commitments?date=&staffId=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/commitments - Invalid salon id")
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	req := &models.ListRequest{
		TenantID: tenantID,
		SalonID:  salonID,
	}

	query := r.URL.Query()

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/commitments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			h.logger.Warn("GET /salons/{id}/commitments - Invalid staffId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, commitmentsService.ErrInvalidInput) {
			h.logger.Warn("GET /salons/{id}/commitments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}

		h.logger.Error("GET /salons/{id}/commitments - Failed to list commitments: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &ScheduleResponse{
		Commitments: make([]*CommitmentResponse, 0, len(result.Commitments)),
		Total:       result.Total,
	}
	for _, c := range result.Commitments {
		response.Commitments = append(response.Commitments, &CommitmentResponse{
			ID:          c.ID,
			SalonID:     c.SalonID,
			StaffID:     c.StaffID,
			Kind:        c.Kind,
			CustomerID:  c.CustomerID,
			ServiceID:   c.ServiceID,
			Description: c.Description,
			Date:        c.Date.Format(domain.DateFormat),
			Start:       c.Start,
			End:         c.End,
			Status:      c.Status,
			Notes:       c.Notes,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
