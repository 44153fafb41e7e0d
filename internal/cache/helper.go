package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per cached entity.
const (
	ContentTTL = 5 * time.Minute
	UserTTL    = 10 * time.Minute
)

// ContentKey returns the cache key for a content row.
func ContentKey(id uint) string {
	return fmt.Sprintf("content:%d", id)
}

// UserKey returns the cache key for a user profile keyed by wallet address.
func UserKey(wallet string) string {
	return "user:" + wallet
}

const contentListVersionKey = "content:list:version"

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which should populate
// dest), then stores the result with ttl. Cache write is best-effort.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate drops a single key.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	_ = client.Del(ctx, key).Err()
}

// InvalidateContentLists bumps the list version so any versioned list keys
// stop being served. Individual content keys are invalidated separately.
func InvalidateContentLists(ctx context.Context) {
	if client == nil {
		return
	}
	_ = client.Incr(ctx, contentListVersionKey).Err()
}
