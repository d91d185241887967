// Package redis caches per-user unread notification counts.
package redis

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/go-faster/errors"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultUnreadTTL bounds how stale a cached count can get if an
// invalidation is lost.
const DefaultUnreadTTL = 10 * time.Minute

const unreadKeyPrefix = "laundry:notifications:unread:"

// UnreadCounter implements ports.UnreadCounter on Redis.
type UnreadCounter struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewUnreadCounter(client goredis.UniversalClient, ttl time.Duration) *UnreadCounter {
	if ttl <= 0 {
		ttl = DefaultUnreadTTL
	}
	return &UnreadCounter{client: client, ttl: ttl}
}

func (c *UnreadCounter) Get(ctx context.Context, userID kernel.UUID) (int64, bool, error) {
	count, err := c.client.Get(ctx, unreadKey(userID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "get unread count")
	}
	return count, true, nil
}

func (c *UnreadCounter) Set(ctx context.Context, userID kernel.UUID, count int64) error {
	if err := c.client.Set(ctx, unreadKey(userID), count, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "set unread count")
	}
	return nil
}

func (c *UnreadCounter) Invalidate(ctx context.Context, userID kernel.UUID) error {
	if err := c.client.Del(ctx, unreadKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "invalidate unread count")
	}
	return nil
}

func unreadKey(userID kernel.UUID) string {
	return unreadKeyPrefix + userID.String()
}
