package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	blockedDateRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/blockeddate"
	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates/models"
)

// Service управление периодами, закрытыми владельцем
type Service struct {
	repo   BlockedDateRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlockedDateRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create блокирует период. Пересечение с бронированиями не проверяется:
// блокировка только убирает дни из доступных.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Create: invalid range %s..%s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, ErrInvalidDateRange
	}

	reason := req.Reason
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if utf8.RuneCountInString(trimmed) > domain.MaxBlockedReasonLength {
			return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockedReasonLength)
		}
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	created, err := s.repo.Create(ctx, &domain.BlockedDate{
		StartDate: rng.Start,
		EndDate:   rng.End,
		Reason:    reason,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked %s..%s (id=%s)",
		rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat), created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// List возвращает все блокировки по дате начала
func (s *Service) List(ctx context.Context) ([]models.BlockedDateResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedDateList(list), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%s not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: repository error for blocked date id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked date id=%s removed", id)
	return nil
}
