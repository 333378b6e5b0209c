// Package cache memoizes engine.Result lookups by the hand string that
// produced them. Adapted from common/cache/ristretto.go's GeneralCache: the
// same ristretto-backed, TTL'd wrapper, narrowed from a generic
// interface{}-valued cache to the one value type this module actually
// stores, since nothing else in the engine needs a general-purpose cache.
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"mahjong/engine"
)

// EvaluationCache memoizes engine.Evaluate results keyed by a caller-chosen
// string (typically the raw hand notation plus a situation fingerprint).
type EvaluationCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New builds an EvaluationCache with a total cost budget of maxCost
// (ristretto's cost unit; every entry stored via Set costs 1, so maxCost
// bounds the number of entries) and ttl as the default expiry for entries
// set via Set.
func New(maxCost int64, ttl time.Duration) (*EvaluationCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating evaluation cache: %w", err)
	}
	return &EvaluationCache{cache: c, ttl: ttl}, nil
}

// Set stores result under key with the cache's default TTL.
func (c *EvaluationCache) Set(key string, result engine.Result) bool {
	return c.cache.SetWithTTL(key, result, 1, c.ttl)
}

// Get returns the cached result for key, if present and unexpired.
func (c *EvaluationCache) Get(key string) (engine.Result, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return engine.Result{}, false
	}
	result, ok := v.(engine.Result)
	return result, ok
}

// Delete evicts key.
func (c *EvaluationCache) Delete(key string) { c.cache.Del(key) }

// Close releases the cache's background goroutines.
func (c *EvaluationCache) Close() { c.cache.Close() }
