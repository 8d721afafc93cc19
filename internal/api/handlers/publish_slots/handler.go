package publish_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
	publishSlots "github.com/salonhq/scheduling-service/internal/usecase/publish_slots"
	"github.com/salonhq/scheduling-service/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные запроса"
	msgInvalidRange       = "дата until раньше начальной даты"
)

// PublishSlotsRequest HTTP request model
type PublishSlotsRequest struct {
	SalonID    int64   `json:"salonId"`
	StaffID    int64   `json:"staffId"`
	Date       string  `json:"date"`  // "2025-10-15"
	Start      string  `json:"start"` // "09:00"
	End        string  `json:"end"`
	Recurrence string  `json:"recurrence"` // none | daily | weekly | weekdays
	Until      *string `json:"until,omitempty"`
}

// PublishSlotsResponse HTTP response model
type PublishSlotsResponse struct {
	OK             bool `json:"ok"`
	CreatedCount   int  `json:"createdCount"`
	AttemptedCount int  `json:"attemptedCount"`
}

type Handler struct {
	useCase PublishSlotsUseCase
	logger  Logger
}

func NewHandler(useCase PublishSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	var req PublishSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.toUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, publishSlots.ErrInvalidRange):
			h.logger.Warn("POST /slots - Invalid range: salon_id=%d, staff_id=%d", req.SalonID, req.StaffID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, publishSlots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to publish slots: salon_id=%d, staff_id=%d, error=%v",
				req.SalonID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slots published: tenant_id=%d, salon_id=%d, created=%d, attempted=%d",
		tenantID, req.SalonID, result.CreatedCount, result.AttemptedCount)
	handlers.RespondJSON(w, http.StatusCreated, &PublishSlotsResponse{
		OK:             true,
		CreatedCount:   result.CreatedCount,
		AttemptedCount: result.AttemptedCount,
	})
}

func (r *PublishSlotsRequest) toUseCaseRequest(tenantID int64) (*publishSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.ParseTimeOfDay(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := types.ParseTimeOfDay(r.End)
	if err != nil {
		return nil, err
	}

	// Нечитаемый until приравнивается к отсутствующему: use case подставит
	// горизонт по умолчанию (начальная дата + месяц)
	var until *time.Time
	if r.Until != nil {
		if parsed, err := time.Parse(domain.DateFormat, *r.Until); err == nil {
			until = &parsed
		}
	}

	return &publishSlots.Request{
		TenantID:   tenantID,
		SalonID:    r.SalonID,
		StaffID:    r.StaffID,
		Date:       date,
		Start:      start,
		End:        end,
		Recurrence: domain.Recurrence(r.Recurrence),
		Until:      until,
	}, nil
}
