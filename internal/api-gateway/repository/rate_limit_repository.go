package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	// IncrementCounter adds one to the counter at key and returns the new value.
	// The expiry is attached only when the counter is created.
	IncrementCounter(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type rateLimitRepository struct {
	redis *redis.Client
}

func (r *rateLimitRepository) IncrementCounter(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("rateLimitRepository.IncrementCounter: %w", err)
	}
	if count == 1 {
		if err = r.redis.Expire(ctx, key, ttl).Err(); err != nil {
			return count, fmt.Errorf("rateLimitRepository.IncrementCounter setting expiry: %w", err)
		}
	}
	return count, nil
}

func NewRateLimitRepository(redis *redis.Client) RateLimitRepository {
	return &rateLimitRepository{
		redis: redis,
	}
}

type memoryCounter struct {
	value     int64
	expiresAt time.Time
}

// memoryRateLimitRepository keeps counters in process memory. Counters are not shared between
// gateway replicas, so limits are only correct with a single instance.
type memoryRateLimitRepository struct {
	mu        sync.Mutex
	counters  map[string]*memoryCounter
	now       func() time.Time
	lastSweep time.Time
}

func (m *memoryRateLimitRepository) IncrementCounter(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now, ttl)

	counter, ok := m.counters[key]
	if !ok || !now.Before(counter.expiresAt) {
		counter = &memoryCounter{}
		m.counters[key] = counter
	}
	counter.value++
	if counter.value == 1 {
		counter.expiresAt = now.Add(ttl)
	}
	return counter.value, nil
}

// sweep drops expired counters at most once per ttl.
func (m *memoryRateLimitRepository) sweep(now time.Time, ttl time.Duration) {
	if now.Sub(m.lastSweep) < ttl {
		return
	}
	for key, counter := range m.counters {
		if !now.Before(counter.expiresAt) {
			delete(m.counters, key)
		}
	}
	m.lastSweep = now
}

func NewMemoryRateLimitRepository(now func() time.Time) RateLimitRepository {
	if now == nil {
		now = time.Now
	}
	return &memoryRateLimitRepository{
		counters: make(map[string]*memoryCounter),
		now:      now,
	}
}
