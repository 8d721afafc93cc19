package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhq/scheduling-service/internal/domain"
	slotRepo "github.com/salonhq/scheduling-service/internal/infra/storage/slot"
)

// Service чтение и удаление публикуемых окон записи.
// Слоты - витрина для клиентских интерфейсов: бронирование их не расходует,
// удаляет их только оператор.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает слоты салона с фильтрацией по мастеру и дате
func (s *Service) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailableSlot, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for salon=%d: %v", filter.SalonID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return slots, nil
}

// Delete удаляет слот по ID
func (s *Service) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.slotRepo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found for tenant=%d", id, tenantID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%d deleted", id)
	return nil
}
