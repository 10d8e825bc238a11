package rulecache

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда хранилище правил недоступно
	ErrStoreUnavailable = errors.New("rulecache: rule store unavailable")

	// ErrNoRules возвращается, когда хранилище не содержит активных правил
	// (только при включённом FallbackOnEmpty)
	ErrNoRules = errors.New("rulecache: no active rules in store")
)
