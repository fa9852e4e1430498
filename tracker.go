package goToken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// consumedKeyPrefix namespaces consumption marks in the cache. The key
	// suffix is the raw id+due concatenation, which uniquely identifies a
	// token instance.
	consumedKeyPrefix = "auth-tk-consumed-"
	consumedValue     = "true"

	// minConsumeTTL keeps marks for already-expired tokens from producing a
	// non-positive TTL, which redis rejects. Such marks evict almost
	// immediately, matching the no-op-in-effect contract.
	minConsumeTTL = time.Second
)

// Tracker records and queries consumption marks for tokens against an
// external expiring cache. The mark is best-effort: it lives at most one
// second past the token's own due instant and is then evicted by the cache.
//
// Tracker performs no retries and no graceful degradation; cache failures
// surface wrapped in [ErrRedisUnavailable]. It is safe for concurrent use
// when the underlying client is. Two concurrent Consume calls for the same
// token are a benign race: both write the same key.
type Tracker struct {
	redis      redis.UniversalClient
	prefix     string
	foreverTTL time.Duration
}

// NewTracker creates a Tracker over the given redis client. prefix overrides
// the default consumption-key namespace when non-empty. foreverTTL bounds the
// mark lifetime for never-expiring tokens; zero means the mark persists until
// the cache drops it.
func NewTracker(client redis.UniversalClient, prefix string, foreverTTL time.Duration) *Tracker {
	if prefix == "" {
		prefix = consumedKeyPrefix
	}
	return &Tracker{
		redis:      client,
		prefix:     prefix,
		foreverTTL: foreverTTL,
	}
}

func (c *Tracker) key(tk Token) string {
	return c.prefix + tk.cacheSuffix()
}

// IsConsumed reports whether a consumption mark exists for tk.
func (c *Tracker) IsConsumed(ctx context.Context, tk Token) (bool, error) {
	_, err := c.redis.Get(ctx, c.key(tk)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return true, nil
}

// Consume marks tk as used. The mark's TTL is the token's remaining validity
// window plus one second, so the cache evicts it naturally once the token
// itself can no longer pass the expiry check. Consuming an already-consumed
// or already-expired token overwrites the same key and is not an error.
func (c *Tracker) Consume(ctx context.Context, tk Token) error {
	if err := c.redis.Set(ctx, c.key(tk), consumedValue, c.markTTL(tk)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Valid reports full token validity: not empty, not expired, and not
// consumed. Only the consumption leg can fail, and only with an
// infrastructure error.
func (c *Tracker) Valid(ctx context.Context, tk Token) (bool, error) {
	if tk.Empty() || tk.Expired() {
		return false, nil
	}
	consumed, err := c.IsConsumed(ctx, tk)
	if err != nil {
		return false, err
	}
	return !consumed, nil
}

func (c *Tracker) markTTL(tk Token) time.Duration {
	if tk.due <= 0 {
		return c.foreverTTL
	}
	ttl := time.Duration(tk.due+1000-nowMillis()) * time.Millisecond
	if ttl < minConsumeTTL {
		return minConsumeTTL
	}
	return ttl.Truncate(time.Second)
}
