package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giovannicg/INMEDT/internal/security"
	"github.com/giovannicg/INMEDT/internal/usecase"
	"github.com/redis/go-redis/v9"
)

const tokenPrefix = "storefront:token:"

// RedisTokens keeps one bearer token per browser session. Keys expire with
// the token's exp claim; tokens without one keep the fallback TTL.
type RedisTokens struct {
	rdb      redis.UniversalClient
	fallback time.Duration
	now      func() time.Time
}

func NewRedisTokens(rdb redis.UniversalClient, fallback time.Duration) *RedisTokens {
	return &RedisTokens{rdb: rdb, fallback: fallback, now: time.Now}
}

// ForSession scopes the store to one session id.
func (r *RedisTokens) ForSession(sessionID string) usecase.TokenStore {
	return &redisSessionTokens{r: r, key: tokenPrefix + sessionID}
}

type redisSessionTokens struct {
	r   *RedisTokens
	key string
}

func (s *redisSessionTokens) Get(ctx context.Context) (string, error) {
	val, err := s.r.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return val, nil
}

func (s *redisSessionTokens) Set(ctx context.Context, token string) error {
	ttl := security.TTL(token, s.r.now(), s.r.fallback)
	if ttl <= 0 {
		// already expired; a zero TTL would mean "keep forever" to redis
		return s.Clear(ctx)
	}
	if err := s.r.rdb.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (s *redisSessionTokens) Clear(ctx context.Context) error {
	if err := s.r.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
