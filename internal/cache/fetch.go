package cache

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/metrics"
)

// Fetch returns the cached value under key, or calls load and caches its
// result for ttl. A failing cache never fails the read.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.RecordCacheLookup("error")
		logger.Warn("cache read failed", "key", key, "error", err)
	case hit:
		metrics.RecordCacheLookup("hit")
		return cached, nil
	default:
		metrics.RecordCacheLookup("miss")
		logger.Debug("cache miss", "key", key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v, ttl); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}
	return v, nil
}
