package create_commitment

import (
	"errors"
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	createCommitment "github.com/salonhq/scheduling-service/internal/usecase/create_commitment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput         = "некорректные данные запроса"
	msgMissingField         = "не заполнено обязательное поле для выбранного вида записи"
	msgOutsideBusinessHours = "интервал выходит за рабочие часы салона"
	msgOutsideShift         = "интервал выходит за смену мастера"
	msgTimeConflict         = "интервал пересекается с существующей записью"
)

type Handler struct {
	useCase CreateCommitmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateCommitmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/commitments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	var req CreateCommitmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /commitments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /commitments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	h.logger.Info("POST /commitments - Commitment created: commitment_id=%d, tenant_id=%d, salon_id=%d",
		result.ID, tenantID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateCommitmentRequest, err error) {
	var hoursErr *createCommitment.OutsideHoursError
	var shiftErr *createCommitment.OutsideShiftError
	var conflictErr *createCommitment.ConflictError

	switch {
	case errors.As(err, &conflictErr):
		h.logger.Warn("POST /commitments - Time conflict: salon_id=%d, staff_id=%d, with=%d",
			req.SalonID, req.StaffID, conflictErr.CommitmentID)
		handlers.RespondErrorDetails(w, http.StatusConflict, msgTimeConflict, map[string]interface{}{
			"id":    conflictErr.CommitmentID,
			"start": conflictErr.Interval.Start.String(),
			"end":   conflictErr.Interval.End.String(),
		})

	case errors.Is(err, createCommitment.ErrTimeConflict):
		h.logger.Warn("POST /commitments - Time conflict: salon_id=%d, staff_id=%d", req.SalonID, req.StaffID)
		handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

	case errors.As(err, &hoursErr):
		h.logger.Warn("POST /commitments - Outside business hours: salon_id=%d", req.SalonID)
		details := map[string]interface{}{"closed": hoursErr.Closed}
		if !hoursErr.Closed {
			details["open"] = hoursErr.Open.Start.String()
			details["close"] = hoursErr.Open.End.String()
		}
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgOutsideBusinessHours, details)

	case errors.As(err, &shiftErr):
		h.logger.Warn("POST /commitments - Outside shift: staff_id=%d", req.StaffID)
		details := map[string]interface{}{"noShift": shiftErr.NoShift}
		if !shiftErr.NoShift {
			details["start"] = shiftErr.Shift.Start.String()
			details["end"] = shiftErr.Shift.End.String()
		}
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgOutsideShift, details)

	case errors.Is(err, createCommitment.ErrMissingField):
		h.logger.Warn("POST /commitments - Missing field: kind=%s", req.Kind)
		handlers.RespondBadRequest(w, msgMissingField)

	case errors.Is(err, createCommitment.ErrInvalidInput):
		h.logger.Warn("POST /commitments - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /commitments - Failed to create commitment: salon_id=%d, staff_id=%d, error=%v",
			req.SalonID, req.StaffID, err)
		handlers.RespondInternalError(w)
	}
}
