// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"calorie_backend/internal/feature/foods/domain/entity"
	"calorie_backend/internal/feature/foods/usecase"
)

// CachingFoodRepository decorates a FoodRepository with Redis caching.
// Food-composition data is effectively static, so identical queries are
// served from cache instead of hitting the upstream database again.
type CachingFoodRepository struct {
	inner     usecase.FoodRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingFoodRepository implements FoodRepository.
var _ usecase.FoodRepository = (*CachingFoodRepository)(nil)

// NewCachingFoodRepository decorates a FoodRepository with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "foods".
func NewCachingFoodRepository(rdb *redis.Client, ttl time.Duration, inner usecase.FoodRepository, namespace string) *CachingFoodRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "foods"
	}
	return &CachingFoodRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search serves a query from cache when possible, falling back to the inner
// repository and storing the result best effort.
func (c *CachingFoodRepository) Search(ctx context.Context, query string) ([]entity.Food, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query)
	}

	key := c.cacheKey(query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Food
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a query.
func (c *CachingFoodRepository) cacheKey(query string) string {
	return c.namespace + ":" + safe(strings.ToLower(query))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
