package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhq/scheduling-service/internal/domain"
	hoursRepo "github.com/salonhq/scheduling-service/internal/infra/storage/businesshours"
)

// Service резолвит рабочие часы салона на конкретную дату.
// День недели везде считается по time.Weekday (воскресенье = 0); это же
// значение лежит в колонке weekday, без промежуточных преобразований.
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// Resolve возвращает рабочий интервал салона на дату.
// Запись салона имеет приоритет; при её отсутствии используется дефолт
// арендатора. Нет записи или флаг closed - салон закрыт.
func (s *Service) Resolve(ctx context.Context, tenantID, salonID int64, date time.Time) (domain.DayHours, error) {
	hours, err := s.hoursRepo.GetForWeekday(ctx, tenantID, salonID, date.Weekday())
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			return domain.DayHours{Open: false}, nil
		}
		s.logger.Error("Resolve: failed to get business hours for salon=%d weekday=%d: %v",
			salonID, date.Weekday(), err)
		return domain.DayHours{}, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if hours.Closed {
		return domain.DayHours{Open: false}, nil
	}

	return domain.DayHours{Open: true, Hours: hours.Hours}, nil
}

// GetWeek возвращает недельное расписание салона
func (s *Service) GetWeek(ctx context.Context, tenantID, salonID int64) ([]*domain.BusinessHours, error) {
	hours, err := s.hoursRepo.ListBySalon(ctx, tenantID, salonID)
	if err != nil {
		s.logger.Error("GetWeek: failed to list business hours for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// SetWeek создает или обновляет записи рабочих часов салона.
// Каждый день обрабатывается отдельным upsert.
func (s *Service) SetWeek(ctx context.Context, entries []*domain.BusinessHours) ([]*domain.BusinessHours, error) {
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			s.logger.Warn("SetWeek: invalid entry for salon=%v weekday=%d: %v",
				entry.SalonID, entry.Weekday, err)
			return nil, err
		}
	}

	result := make([]*domain.BusinessHours, 0, len(entries))
	for _, entry := range entries {
		saved, err := s.hoursRepo.Upsert(ctx, entry)
		if err != nil {
			s.logger.Error("SetWeek: failed to upsert hours for salon=%v weekday=%d: %v",
				entry.SalonID, entry.Weekday, err)
			return nil, fmt.Errorf("%w: SetWeek - repository error: %v", ErrInternal, err)
		}
		result = append(result, saved)
	}

	s.logger.Info("SetWeek: updated %d business hours entries", len(result))
	return result, nil
}

// validateEntry проверяет одну запись рабочих часов
func validateEntry(entry *domain.BusinessHours) error {
	if entry.Weekday < time.Sunday || entry.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d out of range", ErrInvalidHours, entry.Weekday)
	}

	if entry.Closed {
		return nil
	}

	if err := entry.Hours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	return nil
}
