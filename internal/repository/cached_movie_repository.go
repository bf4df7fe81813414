package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
	"github.com/abhi1440/RateMyMovieAPP/pkg/redis"
)

const (
	movieCachePrefix = "movies:"
	movieCacheTTL    = 5 * time.Minute
)

// CachedMovieRepository wraps a MovieRepository with a Redis read-through
// cache for list queries. Writes invalidate every cached list. A nil
// Redis client disables caching and the wrapper delegates directly.
type CachedMovieRepository struct {
	inner MovieRepository
	cache *redis.Client
	group singleflight.Group
	log   *logger.Logger
}

// NewCachedMovieRepository creates a caching wrapper around inner.
// cache may be nil, in which case all calls pass through.
func NewCachedMovieRepository(inner MovieRepository, cache *redis.Client, log *logger.Logger) *CachedMovieRepository {
	return &CachedMovieRepository{
		inner: inner,
		cache: cache,
		log:   log,
	}
}

// getList serves one cached list query. Concurrent misses for the same
// key are collapsed into a single database round trip.
func (r *CachedMovieRepository) getList(ctx context.Context, key string, load func(context.Context) ([]*domain.Movie, error)) ([]*domain.Movie, error) {
	if r.cache == nil {
		return load(ctx)
	}

	cached, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var movies []*domain.Movie
		if err := json.Unmarshal([]byte(cached), &movies); err == nil {
			return movies, nil
		}
		// Corrupt entry, drop it and fall through to the database
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, goredis.Nil) {
		r.log.Warn("movie cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err, _ := r.group.Do(key, func() (interface{}, error) {
		movies, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(movies); err == nil {
			if err := r.cache.Set(ctx, key, data, movieCacheTTL).Err(); err != nil {
				r.log.Warn("movie cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return movies, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Movie), nil
}

// invalidate drops every cached movie list after a write.
func (r *CachedMovieRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}

	var cursor uint64
	for {
		keys, next, err := r.cache.Scan(ctx, cursor, movieCachePrefix+"*", 100).Result()
		if err != nil {
			r.log.Warn("movie cache invalidation failed", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			r.cache.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

// Create creates a movie and invalidates cached lists
func (r *CachedMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := r.inner.Create(ctx, movie); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// GetByID retrieves a single movie, bypassing the cache
func (r *CachedMovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	return r.inner.GetByID(ctx, id)
}

// List retrieves all movies
func (r *CachedMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	return r.getList(ctx, movieCachePrefix+"all", r.inner.List)
}

// ListNewest retrieves the n most recent movies by release year
func (r *CachedMovieRepository) ListNewest(ctx context.Context, n int) ([]*domain.Movie, error) {
	key := fmt.Sprintf("%snewest:%d", movieCachePrefix, n)
	return r.getList(ctx, key, func(ctx context.Context) ([]*domain.Movie, error) {
		return r.inner.ListNewest(ctx, n)
	})
}

// ListTop retrieves the n highest rated movies
func (r *CachedMovieRepository) ListTop(ctx context.Context, n int) ([]*domain.Movie, error) {
	key := fmt.Sprintf("%stop:%d", movieCachePrefix, n)
	return r.getList(ctx, key, func(ctx context.Context) ([]*domain.Movie, error) {
		return r.inner.ListTop(ctx, n)
	})
}

// ListRandom retrieves a random sample of n movies. Random results are
// never cached, a cached sample would stop being random.
func (r *CachedMovieRepository) ListRandom(ctx context.Context, n int) ([]*domain.Movie, error) {
	return r.inner.ListRandom(ctx, n)
}

// Update updates a movie and invalidates cached lists
func (r *CachedMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if err := r.inner.Update(ctx, movie); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete deletes a movie and invalidates cached lists
func (r *CachedMovieRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// DeleteAll wipes the movies table and the cache
func (r *CachedMovieRepository) DeleteAll(ctx context.Context) error {
	if err := r.inner.DeleteAll(ctx); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
