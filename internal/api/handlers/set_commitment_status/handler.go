package set_commitment_status

import (
	"errors"
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	commitmentsService "github.com/salonhq/scheduling-service/internal/service/commitments"
	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCommitmentID = "некорректный идентификатор записи"
	msgInvalidStatus       = "неизвестный статус записи"
	msgIllegalTransition   = "переход в этот статус запрещен"
	msgCommitmentNotFound  = "запись не найдена"
)

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // scheduled | confirmed | completed | cancelled | no_show
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

// Handle PATCH /api/v1/commitments/{commitmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	commitmentID, err := handlers.PathInt64(r, "commitmentId")
	if err != nil {
		h.logger.Warn("PATCH /commitments/{id}/status - Invalid commitment id")
		handlers.RespondBadRequest(w, msgInvalidCommitmentID)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /commitments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetStatus(r.Context(), commitmentID, &models.SetStatusRequest{
		TenantID: tenantID,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, commitmentsService.ErrCommitmentNotFound):
			h.logger.Warn("PATCH /commitments/{id}/status - Commitment not found: commitment_id=%d", commitmentID)
			handlers.RespondNotFound(w, msgCommitmentNotFound)

		case errors.Is(err, commitmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /commitments/{id}/status - Invalid status: status=%s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, commitmentsService.ErrIllegalTransition):
			h.logger.Warn("PATCH /commitments/{id}/status - Illegal transition: commitment_id=%d, status=%s",
				commitmentID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /commitments/{id}/status - Failed to set status: commitment_id=%d, error=%v",
				commitmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /commitments/{id}/status - Status updated: commitment_id=%d, status=%s",
		commitmentID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
