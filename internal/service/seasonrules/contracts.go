package seasonrules

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rulecache"
)

// SeasonRuleRepository интерфейс репозитория правил сезона
type SeasonRuleRepository interface {
	GetAll(ctx context.Context) ([]domain.SeasonRule, error)
	GetByID(ctx context.Context, id string) (*domain.SeasonRule, error)
	Create(ctx context.Context, rule *domain.SeasonRule) (*domain.SeasonRule, error)
	Update(ctx context.Context, rule *domain.SeasonRule) (*domain.SeasonRule, error)
	Delete(ctx context.Context, id string) error
}

// RuleCache кэш активных правил
type RuleCache interface {
	Rules(ctx context.Context) ([]domain.SeasonRule, rulecache.Source)
	Refresh(ctx context.Context) ([]domain.SeasonRule, rulecache.Source)
	Invalidate()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
