package repository

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/abhi1440/RateMyMovieAPP/pkg/redis"
)

const denylistPrefix = "denylist:"

// RedisTokenDenylist implements TokenDenylist backed by Redis. Revoked
// token IDs expire together with the token itself, so the set never
// grows past the set of still-valid revoked tokens.
type RedisTokenDenylist struct {
	cache *redis.Client
}

// NewRedisTokenDenylist creates a new RedisTokenDenylist
func NewRedisTokenDenylist(cache *redis.Client) *RedisTokenDenylist {
	return &RedisTokenDenylist{cache: cache}
}

// Revoke marks a token ID as revoked for ttl
func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if d.cache == nil || ttl <= 0 {
		return nil
	}
	return d.cache.Set(ctx, denylistPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token ID has been revoked. Redis being
// unavailable fails open so a cache outage does not lock everyone out.
func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.cache == nil {
		return false, nil
	}
	err := d.cache.Get(ctx, denylistPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
