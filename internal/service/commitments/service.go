package commitments

import (
	"context"
	"errors"
	"fmt"

	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	"github.com/salonhq/scheduling-service/internal/service/commitments/models"
)

// Service операции над записями расписания, не требующие повторной
// проверки интервалов: чтение, смена статуса, удаление.
// Создание и перенос идут через соответствующие usecase.
type Service struct {
	commitmentRepo CommitmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(commitmentRepo CommitmentRepository, logger Logger) *Service {
	return &Service{
		commitmentRepo: commitmentRepo,
		logger:         logger,
	}
}

// GetByID получает запись по ID в пределах арендатора
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.CommitmentResponse, error) {
	c, err := s.commitmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			s.logger.Warn("GetByID: commitment id=%d not found for tenant=%d", id, tenantID)
			return nil, ErrCommitmentNotFound
		}
		s.logger.Error("GetByID: repository error for commitment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCommitment(c), nil
}

// List получает расписание салона с фильтрацией по дате, мастеру и статусу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.CommitmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	commitments, err := s.commitmentRepo.ListBySalon(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d commitments for salon=%d", len(commitments), req.SalonID)
	return models.FromDomainCommitmentList(commitments), nil
}

// SetStatus переводит запись в новый статус по машине состояний.
// Интервалы не перепроверяются: смена статуса не двигает запись во времени.
// Повторная установка текущего статуса - идемпотентный no-op.
func (s *Service) SetStatus(ctx context.Context, id int64, req *models.SetStatusRequest) error {
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetStatus: invalid status=%s for commitment id=%d", req.Status, id)
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	c, err := s.commitmentRepo.GetByID(ctx, req.TenantID, id)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			s.logger.Warn("SetStatus: commitment id=%d not found for tenant=%d", id, req.TenantID)
			return ErrCommitmentNotFound
		}
		s.logger.Error("SetStatus: repository error for commitment id=%d: %v", id, err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	if !c.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("SetStatus: transition %s -> %s rejected for commitment id=%d",
			c.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.Status, newStatus)
	}

	if c.Status == newStatus {
		s.logger.Info("SetStatus: commitment id=%d already has status=%s", id, newStatus)
		return nil
	}

	if err := s.commitmentRepo.UpdateStatus(ctx, req.TenantID, id, newStatus); err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			return ErrCommitmentNotFound
		}
		s.logger.Error("SetStatus: repository error for commitment id=%d: %v", id, err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: commitment id=%d moved %s -> %s", id, c.Status, newStatus)
	return nil
}

// Delete удаляет запись физически.
// Жёсткое удаление не оставляет истории; обычный путь освобождения
// слота - отмена через SetStatus.
func (s *Service) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.commitmentRepo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			s.logger.Warn("Delete: commitment id=%d not found for tenant=%d", id, tenantID)
			return ErrCommitmentNotFound
		}
		s.logger.Error("Delete: repository error for commitment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: commitment id=%d deleted", id)
	return nil
}
