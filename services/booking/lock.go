package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Locker serializes the check-then-insert critical section. Implementations
// must be safe across processes, not just goroutines.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisLocker implements Locker with SETNX on a dedicated Redis DB.
type RedisLocker struct {
	Client *redis.Client
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.Client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring booking lock %s: %w", key, err)
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	if err := l.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("releasing booking lock %s: %w", key, err)
	}
	return nil
}

// lockKey scopes the critical section to one barber of one establishment. A
// booking with no barber serializes on the establishment-wide key.
func lockKey(establishmentID string, barberID *string) string {
	barber := "all"
	if barberID != nil {
		barber = *barberID
	}
	return fmt.Sprintf("booklock:%s:%s", establishmentID, barber)
}
