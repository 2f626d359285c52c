package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSequencer hands out strictly increasing suffixes per reference
// bucket, so same-day references stop colliding when a Redis instance
// is available. The counter wraps at 100 because the reference format
// only carries two digits.
type RedisSequencer struct {
	client *redis.Client
}

func NewRedisSequencer(client *redis.Client) *RedisSequencer {
	return &RedisSequencer{client: client}
}

func (s *RedisSequencer) Next(ctx context.Context, bucket string) (int, error) {
	key := "bookingref:" + bucket

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	if n == 1 {
		// Buckets are day-scoped; keep them around long enough to cover
		// timezone skew, then let them expire.
		s.client.Expire(ctx, key, 48*time.Hour)
	}

	return int(n % 100), nil
}
