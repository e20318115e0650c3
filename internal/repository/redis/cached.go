package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

const keyPrefix = "catalog:"

// CachedRepository is a read-through Redis cache in front of another
// repository. Reads are served from Redis when possible; writes go to the
// inner repository and then evict the affected keys. Redis failures are
// logged and fall back to the inner repository.
type CachedRepository[T domain.Entity] struct {
	inner    repository.Repository[T]
	client   redis.UniversalClient
	resource string
	ttl      time.Duration
	logger   *slog.Logger
}

var _ repository.Repository[domain.Review] = (*CachedRepository[domain.Review])(nil)

// NewCachedRepository wraps inner with a cache whose keys are namespaced by resource.
func NewCachedRepository[T domain.Entity](
	inner repository.Repository[T],
	client redis.UniversalClient,
	resource string,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedRepository[T] {
	return &CachedRepository[T]{
		inner:    inner,
		client:   client,
		resource: resource,
		ttl:      ttl,
		logger:   logger,
	}
}

func (r *CachedRepository[T]) idKey(id int64) string {
	return keyPrefix + r.resource + ":" + strconv.FormatInt(id, 10)
}

func (r *CachedRepository[T]) allKey() string {
	return keyPrefix + r.resource + ":all"
}

// GetEntities returns the cached collection or loads and caches it.
func (r *CachedRepository[T]) GetEntities(ctx context.Context) ([]T, error) {
	var cached []T
	if r.load(ctx, r.allKey(), &cached) {
		return cached, nil
	}

	entities, err := r.inner.GetEntities(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, r.allKey(), entities)
	return entities, nil
}

// GetByID returns the cached entity or loads and caches it. Misses in the
// inner repository, including a nil entity, are not cached.
func (r *CachedRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var cached T
	if r.load(ctx, r.idKey(id), &cached) {
		return &cached, nil
	}

	entity, err := r.inner.GetByID(ctx, id)
	if err != nil || entity == nil {
		return nil, err
	}
	r.store(ctx, r.idKey(id), entity)
	return entity, nil
}

func (r *CachedRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.inner.Create(ctx, entity); err != nil {
		return err
	}
	r.evict(ctx, r.allKey())
	return nil
}

func (r *CachedRepository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.inner.Update(ctx, entity); err != nil {
		return err
	}
	r.evict(ctx, r.idKey((*entity).EntityID()), r.allKey())
	return nil
}

func (r *CachedRepository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.inner.Delete(ctx, entity); err != nil {
		return err
	}
	r.evict(ctx, r.idKey((*entity).EntityID()), r.allKey())
	return nil
}

// load reports whether key was found and decoded into dst. A JSON null entry
// counts as a miss and is evicted.
func (r *CachedRepository[T]) load(ctx context.Context, key string, dst any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warn(ctx, "cache read failed", key, err)
		}
		return false
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.evict(ctx, key)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.warn(ctx, "cache entry corrupt", key, err)
		r.evict(ctx, key)
		return false
	}
	return true
}

func (r *CachedRepository[T]) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.warn(ctx, "cache encode failed", key, fmt.Errorf("marshal %s: %w", r.resource, err))
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.warn(ctx, "cache write failed", key, err)
	}
}

func (r *CachedRepository[T]) evict(ctx context.Context, keys ...string) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warn(ctx, "cache evict failed", keys[0], err)
	}
}

func (r *CachedRepository[T]) warn(ctx context.Context, msg, key string, err error) {
	r.logger.WarnContext(ctx, msg,
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// ReviewCache adds the product listing to a cached review repository. The
// per-product listing is not cached.
type ReviewCache struct {
	*CachedRepository[domain.Review]
	reviews repository.ReviewRepository
}

var _ repository.ReviewRepository = (*ReviewCache)(nil)

// NewReviewCache wraps a review repository with the read-through cache.
func NewReviewCache(inner repository.ReviewRepository, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *ReviewCache {
	return &ReviewCache{
		CachedRepository: NewCachedRepository[domain.Review](inner, client, "review", ttl, logger),
		reviews:          inner,
	}
}

// GetByProductID always reads from the inner repository.
func (c *ReviewCache) GetByProductID(ctx context.Context, productID int64, limit, offset int) ([]domain.Review, int, error) {
	return c.reviews.GetByProductID(ctx, productID, limit, offset)
}
