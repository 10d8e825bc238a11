package rulecache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Source tells where a rule set came from
type Source string

const (
	SourceStore   Source = "store"
	SourceCache   Source = "cache"
	SourceDefault Source = "default"
)

// Options настройки кэша
type Options struct {
	// TTL время жизни снимка. 0 = всегда перечитывать хранилище.
	TTL time.Duration
	// FallbackOnEmpty подставляет правила по умолчанию, если активных правил нет.
	FallbackOnEmpty bool
}

type snapshot struct {
	rules     []domain.SeasonRule
	fetchedAt time.Time
}

// Cache хранит последний прочитанный набор активных правил.
// Снимок заменяется целиком одной атомарной записью, поэтому читатели
// никогда не видят частично обновлённый список. Повторное чтение хранилища
// при одновременном истечении TTL безвредно.
type Cache struct {
	store        RuleStore
	opts         Options
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger

	current  atomic.Pointer[snapshot]
	lastGood atomic.Pointer[snapshot] // переживает Invalidate, используется только при сбое хранилища
}

// New создает новый кэш правил
func New(store RuleStore, opts Options, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		store:        store,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (c *Cache) WithTimeProvider(tp TimeProvider) *Cache {
	c.timeProvider = tp
	return c
}

// Load возвращает активные правила из свежего снимка или из хранилища.
// Ошибки хранилища возвращаются как есть, без подстановки значений по умолчанию.
func (c *Cache) Load(ctx context.Context) ([]domain.SeasonRule, error) {
	rules, _, err := c.load(ctx)
	return rules, err
}

func (c *Cache) load(ctx context.Context) ([]domain.SeasonRule, Source, error) {
	now := c.timeProvider.Now()

	if snap := c.current.Load(); snap != nil && now.Sub(snap.fetchedAt) < c.opts.TTL {
		c.hit()
		return snap.rules, SourceCache, nil
	}
	c.miss()

	rules, err := c.store.FindActive(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(rules) == 0 && c.opts.FallbackOnEmpty {
		return nil, "", ErrNoRules
	}

	snap := &snapshot{rules: rules, fetchedAt: now}
	c.current.Store(snap)
	c.lastGood.Store(snap)
	return rules, SourceStore, nil
}

// Rules политика поверх Load: при ошибке хранилища отдаёт последний снимок,
// а если его нет, встроенные правила по умолчанию. Никогда не возвращает ошибку.
func (c *Cache) Rules(ctx context.Context) ([]domain.SeasonRule, Source) {
	rules, source, err := c.load(ctx)
	if err == nil {
		return rules, source
	}

	c.fallback()
	if errors.Is(err, ErrNoRules) {
		c.logger.Warn("RuleCache: no active rules stored, using default rules")
		return domain.DefaultSeasonRules(), SourceDefault
	}

	if snap := c.lastGood.Load(); snap != nil {
		c.logger.Error("RuleCache: %v, using last loaded rules (fetched at %s)", err, snap.fetchedAt.Format(time.RFC3339))
		return snap.rules, SourceCache
	}

	c.logger.Error("RuleCache: %v, using default rules", err)
	return domain.DefaultSeasonRules(), SourceDefault
}

// Invalidate сбрасывает снимок: следующее чтение обязательно обратится к хранилищу.
// Должен вызываться после каждого создания, изменения или удаления правила.
func (c *Cache) Invalidate() {
	c.current.Store(nil)
	c.logger.Info("RuleCache: invalidated")
}

// Refresh сбрасывает снимок и сразу перечитывает правила
func (c *Cache) Refresh(ctx context.Context) ([]domain.SeasonRule, Source) {
	c.Invalidate()
	return c.Rules(ctx)
}

func (c *Cache) hit() {
	if c.metrics != nil {
		c.metrics.RuleCacheHit()
	}
}

func (c *Cache) miss() {
	if c.metrics != nil {
		c.metrics.RuleCacheMiss()
	}
}

func (c *Cache) fallback() {
	if c.metrics != nil {
		c.metrics.RuleCacheFallback()
	}
}
