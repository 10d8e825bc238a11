package seasonrules

import (
	"context"
	"errors"
	"fmt"

	seasonRuleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/seasonrule"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

// Service управление правилами сезона.
// Каждое изменение правил сбрасывает кэш активных правил.
type Service struct {
	repo   SeasonRuleRepository
	cache  RuleCache
	logger Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(repo SeasonRuleRepository, cache RuleCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает все правила, включая неактивные
func (s *Service) List(ctx context.Context) ([]models.SeasonRuleResponse, error) {
	rules, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSeasonRuleList(rules), nil
}

// GetActive возвращает правила, которые сейчас применяет движок.
// При недоступном хранилище это запасные правила, ошибка не возвращается.
func (s *Service) GetActive(ctx context.Context) *models.ActiveRulesResponse {
	rules, source := s.cache.Rules(ctx)
	return &models.ActiveRulesResponse{
		Rules:  models.FromDomainSeasonRuleList(rules),
		Source: string(source),
	}
}

// GetByID получает правило по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SeasonRuleResponse, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, seasonRuleRepo.ErrSeasonRuleNotFound) {
			s.logger.Warn("GetByID: season rule id=%s not found", id)
			return nil, ErrSeasonRuleNotFound
		}
		s.logger.Error("GetByID: repository error for season rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSeasonRule(rule), nil
}

// Create создает новое правило
func (s *Service) Create(ctx context.Context, req *models.SeasonRuleRequest) (*models.SeasonRuleResponse, error) {
	rule := req.ToDomain("")
	if err := validateRule(rule); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("Create: season rule id=%s (%s) created", created.ID, created.Name)
	return models.FromDomainSeasonRule(created), nil
}

// Update полностью заменяет правило
func (s *Service) Update(ctx context.Context, id string, req *models.SeasonRuleRequest) (*models.SeasonRuleResponse, error) {
	rule := req.ToDomain(id)
	if err := validateRule(rule); err != nil {
		s.logger.Warn("Update: validation failed for season rule id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, rule)
	if err != nil {
		if errors.Is(err, seasonRuleRepo.ErrSeasonRuleNotFound) {
			s.logger.Warn("Update: season rule id=%s not found", id)
			return nil, ErrSeasonRuleNotFound
		}
		s.logger.Error("Update: repository error for season rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("Update: season rule id=%s updated", id)
	return models.FromDomainSeasonRule(updated), nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, seasonRuleRepo.ErrSeasonRuleNotFound) {
			s.logger.Warn("Delete: season rule id=%s not found", id)
			return ErrSeasonRuleNotFound
		}
		s.logger.Error("Delete: repository error for season rule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	s.logger.Info("Delete: season rule id=%s deleted", id)
	return nil
}

// Refresh сбрасывает кэш и сразу перечитывает активные правила
func (s *Service) Refresh(ctx context.Context) *models.ActiveRulesResponse {
	rules, source := s.cache.Refresh(ctx)
	s.logger.Info("Refresh: %d active rules loaded (source=%s)", len(rules), source)
	return &models.ActiveRulesResponse{
		Rules:  models.FromDomainSeasonRuleList(rules),
		Source: string(source),
	}
}
