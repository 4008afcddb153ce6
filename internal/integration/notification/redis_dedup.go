package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisDeduper implements adapter.ReminderDeduper with a per-day SETNX key.
// The TTL outlives the day so a restart near midnight cannot re-fire.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates a new Redis-backed reminder deduper.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{
		client: client,
		ttl:    ttl,
	}
}

// MarkSent records the reminder for the day. Returns false when a reminder for
// the same subscription already fired that day.
func (d *RedisDeduper) MarkSent(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error) {
	key := fmt.Sprintf("reminder:%s:%s", subscriptionID, day.Format("2006-01-02"))
	ok, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return ok, nil
}
