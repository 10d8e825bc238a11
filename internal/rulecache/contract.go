package rulecache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RuleStore источник активных правил сезона
type RuleStore interface {
	FindActive(ctx context.Context) ([]domain.SeasonRule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчики кэша правил (может быть nil)
type Metrics interface {
	RuleCacheHit()
	RuleCacheMiss()
	RuleCacheFallback()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
