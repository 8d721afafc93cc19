package check_conflict

import (
	"net/http"
	"strconv"
	"time"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

const (
	msgInvalidStaffID   = "некорректный идентификатор мастера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInterval  = "некорректный интервал"
	msgInvalidExcludeID = "некорректный параметр excludeId"
)

// ConflictCheckResponse HTTP response model
type ConflictCheckResponse struct {
	Conflict bool              `json:"conflict"`
	With     *ConflictingEntry `json:"with,omitempty"`
}

// ConflictingEntry конфликтующая запись
type ConflictingEntry struct {
	ID    int64  `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type Handler struct {
	conflicts ConflictDetector
	logger    Logger
}

func NewHandler(conflicts ConflictDetector, logger Logger) *Handler {
	return &Handler{
		conflicts: conflicts,
		logger:    logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/conflict-check?date=&start=&end=&excludeId=
// Read-only проба для UI перед отправкой формы: состояние не меняется,
// успешная проба не гарантирует успех последующего создания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/conflict-check - Invalid staff id")
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/conflict-check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	start, err := types.ParseTimeOfDay(query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/conflict-check - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	end, err := types.ParseTimeOfDay(query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/conflict-check - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	candidate, err := types.NewInterval(start, end)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/conflict-check - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	var excludeID *int64
	if raw := query.Get("excludeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /staff/{id}/conflict-check - Invalid excludeId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &parsed
	}

	conflict, err := h.conflicts.FindConflict(r.Context(), tenantID, staffID, date, candidate, excludeID)
	if err != nil {
		h.logger.Error("GET /staff/{id}/conflict-check - Failed to check conflicts: staff_id=%d, error=%v",
			staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &ConflictCheckResponse{Conflict: conflict != nil}
	if conflict != nil {
		response.With = &ConflictingEntry{
			ID:    conflict.ID,
			Start: conflict.Interval.Start.String(),
			End:   conflict.Interval.End.String(),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
