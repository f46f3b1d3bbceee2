package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockPrefix = "storefront:lock:"

// RedisLocker holds short-lived per-key locks, used to keep a session from
// submitting the same checkout twice. Locks expire on their own after ttl.
type RedisLocker struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func (l *RedisLocker) TryLock(ctx context.Context, scope, key string) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, lockPrefix+scope+":"+key, "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock %s: %w", scope, err)
	}
	return ok, nil
}

func (l *RedisLocker) Unlock(ctx context.Context, scope, key string) error {
	return l.rdb.Del(ctx, lockPrefix+scope+":"+key).Err()
}

type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration
}

func NewMemoryLocker(ttl time.Duration) *MemoryLocker {
	return &MemoryLocker{held: map[string]time.Time{}, ttl: ttl}
}

func (l *MemoryLocker) TryLock(_ context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.held[k]; ok && now.Before(until) {
		return false, nil
	}
	l.held[k] = now.Add(l.ttl)
	return true, nil
}

func (l *MemoryLocker) Unlock(_ context.Context, scope, key string) error {
	l.mu.Lock()
	delete(l.held, scope+":"+key)
	l.mu.Unlock()
	return nil
}
