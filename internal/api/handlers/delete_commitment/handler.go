package delete_commitment

import (
	"errors"
	"net/http"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	commitmentsService "github.com/salonhq/scheduling-service/internal/service/commitments"
)

const (
	msgInvalidCommitmentID = "некорректный идентификатор записи"
	msgCommitmentNotFound  = "запись не найдена"
)

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

// Handle DELETE /api/v1/commitments/{commitmentId}
// Удаление физическое, история не сохраняется. Для освобождения
// слота с сохранением истории использовать отмену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	commitmentID, err := handlers.PathInt64(r, "commitmentId")
	if err != nil {
		h.logger.Warn("DELETE /commitments/{id} - Invalid commitment id")
		handlers.RespondBadRequest(w, msgInvalidCommitmentID)
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, commitmentID); err != nil {
		if errors.Is(err, commitmentsService.ErrCommitmentNotFound) {
			h.logger.Warn("DELETE /commitments/{id} - Commitment not found: commitment_id=%d", commitmentID)
			handlers.RespondNotFound(w, msgCommitmentNotFound)
			return
		}

		h.logger.Error("DELETE /commitments/{id} - Failed to delete: commitment_id=%d, error=%v",
			commitmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /commitments/{id} - Commitment deleted: commitment_id=%d, tenant_id=%d",
		commitmentID, tenantID)
	handlers.RespondNoContent(w)
}
