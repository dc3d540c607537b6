package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const intentTTL = 24 * time.Hour

// IntentCache stores payment-intent client secrets by idempotency key.
// A replayed request within the TTL returns the original secret instead of
// minting a second billable intent.
type IntentCache struct {
	client *redis.Client
}

// NewIntentCache creates an IntentCache wrapping the given Redis client.
func NewIntentCache(client *redis.Client) *IntentCache {
	return &IntentCache{client: client}
}

// Lookup returns the stored secret for key, if any.
func (c *IntentCache) Lookup(ctx context.Context, key string) (string, bool, error) {
	secret, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("intent lookup: %w", err)
	}
	return secret, true, nil
}

// Store records the secret for key (expires after intentTTL).
func (c *IntentCache) Store(ctx context.Context, key, secret string) error {
	return c.client.Set(ctx, c.key(key), secret, intentTTL).Err()
}

func (c *IntentCache) key(k string) string {
	return "intent:" + k
}
