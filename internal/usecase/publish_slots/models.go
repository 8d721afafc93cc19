package publish_slots

import (
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	"github.com/salonhq/scheduling-service/pkg/types"
)

// Request модель запроса на публикацию окон записи
type Request struct {
	TenantID int64
	SalonID  int64
	StaffID  int64

	Date  time.Time
	Start types.TimeOfDay
	End   types.TimeOfDay

	Recurrence domain.Recurrence
	// Последняя дата публикации включительно; при отсутствии - Date + 1 месяц
	Until *time.Time
}

// Response результат пакетной публикации.
// Публикация best-effort: CreatedCount может быть меньше AttemptedCount
type Response struct {
	CreatedCount   int
	AttemptedCount int
}
