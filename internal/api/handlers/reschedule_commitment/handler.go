package reschedule_commitment

import (
	"errors"
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	rescheduleCommitment "github.com/salonhq/scheduling-service/internal/usecase/reschedule_commitment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidCommitmentID  = "некорректный идентификатор записи"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput         = "некорректные данные запроса"
	msgCommitmentNotFound   = "запись не найдена"
	msgOutsideBusinessHours = "интервал выходит за рабочие часы салона"
	msgOutsideShift         = "интервал выходит за смену мастера"
	msgTimeConflict         = "интервал пересекается с существующей записью"
)

type Handler struct {
	useCase RescheduleCommitmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleCommitmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/commitments/{commitmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	commitmentID, err := handlers.PathInt64(r, "commitmentId")
	if err != nil {
		h.logger.Warn("PATCH /commitments/{id} - Invalid commitment id")
		handlers.RespondBadRequest(w, msgInvalidCommitmentID)
		return
	}

	var req RescheduleCommitmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /commitments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, commitmentID)
	if err != nil {
		h.logger.Warn("PATCH /commitments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, commitmentID, err)
		return
	}

	h.logger.Info("PATCH /commitments/{id} - Commitment rescheduled: commitment_id=%d, tenant_id=%d",
		result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, commitmentID int64, err error) {
	var hoursErr *rescheduleCommitment.OutsideHoursError
	var shiftErr *rescheduleCommitment.OutsideShiftError
	var conflictErr *rescheduleCommitment.ConflictError

	switch {
	case errors.Is(err, rescheduleCommitment.ErrNotFound):
		h.logger.Warn("PATCH /commitments/{id} - Commitment not found: commitment_id=%d", commitmentID)
		handlers.RespondNotFound(w, msgCommitmentNotFound)

	case errors.As(err, &conflictErr):
		h.logger.Warn("PATCH /commitments/{id} - Time conflict: commitment_id=%d, with=%d",
			commitmentID, conflictErr.CommitmentID)
		handlers.RespondErrorDetails(w, http.StatusConflict, msgTimeConflict, map[string]interface{}{
			"id":    conflictErr.CommitmentID,
			"start": conflictErr.Interval.Start.String(),
			"end":   conflictErr.Interval.End.String(),
		})

	case errors.Is(err, rescheduleCommitment.ErrTimeConflict):
		h.logger.Warn("PATCH /commitments/{id} - Time conflict: commitment_id=%d", commitmentID)
		handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

	case errors.As(err, &hoursErr):
		h.logger.Warn("PATCH /commitments/{id} - Outside business hours: commitment_id=%d", commitmentID)
		details := map[string]interface{}{"closed": hoursErr.Closed}
		if !hoursErr.Closed {
			details["open"] = hoursErr.Open.Start.String()
			details["close"] = hoursErr.Open.End.String()
		}
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgOutsideBusinessHours, details)

	case errors.As(err, &shiftErr):
		h.logger.Warn("PATCH /commitments/{id} - Outside shift: commitment_id=%d", commitmentID)
		details := map[string]interface{}{"noShift": shiftErr.NoShift}
		if !shiftErr.NoShift {
			details["start"] = shiftErr.Shift.Start.String()
			details["end"] = shiftErr.Shift.End.String()
		}
		handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgOutsideShift, details)

	case errors.Is(err, rescheduleCommitment.ErrInvalidInput):
		h.logger.Warn("PATCH /commitments/{id} - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("PATCH /commitments/{id} - Failed to reschedule: commitment_id=%d, error=%v",
			commitmentID, err)
		handlers.RespondInternalError(w)
	}
}
