package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 5 * time.Minute

// UnreadCache caches per-user unread notification counts.
// Key format: unread:<user_id>
type UnreadCache struct {
	client *redis.Client
}

// NewUnreadCache creates an UnreadCache wrapping the given Redis client.
func NewUnreadCache(client *redis.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

// Get returns the cached count for userID. The second return is false on a
// cache miss.
func (c *UnreadCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unread cache get: %w", err)
	}
	return n, true, nil
}

// Set stores the count for userID (expires after unreadTTL).
func (c *UnreadCache) Set(ctx context.Context, userID string, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, unreadTTL).Err()
}

// Invalidate drops the cached count so the next read recomputes it.
func (c *UnreadCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *UnreadCache) key(userID string) string {
	return "unread:" + userID
}
