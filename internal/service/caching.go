package service

import (
	"context"
	"time"

	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/metrics"

	"github.com/google/uuid"
)

// cachedJSON returns the cached value at key, or loads, stores and returns it.
// Cache failures fall through to load.
func cachedJSON[T any](ctx context.Context, c cache.Cache, name, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	found, err := c.GetJSON(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(name, "error")
		logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("Cache read failed, loading from database")
	case found:
		metrics.RecordCacheLookup(name, "hit")
		return cached, nil
	default:
		metrics.RecordCacheLookup(name, "miss")
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.SetJSON(ctx, key, value, ttl); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("Cache write failed")
	}
	return value, nil
}

// invalidateUserCaches drops the per-user organization list and dashboard entries
func invalidateUserCaches(ctx context.Context, c cache.Cache, userIDs ...uuid.UUID) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs)*2)
	for _, id := range userIDs {
		keys = append(keys, cache.UserOrganizationsKey(id.String()), cache.DashboardStatsKey(id.String()))
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate cached user data")
	}
}
