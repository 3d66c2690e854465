package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// hitScript increments the counter and starts its window on the first hit,
// so the window is fixed from the first attempt.
var hitScript = redis.NewScript(`
	local count = redis.call("INCR", KEYS[1])
	if count == 1 then
		redis.call("PEXPIRE", KEYS[1], ARGV[1])
	end
	return count
`)

// AttemptLimiter counts attempts per key inside a fixed window. Once a key
// reaches Max attempts it stays blocked until its window expires or it is reset.
type AttemptLimiter struct {
	client    *Client
	namespace string
	max       int64
	window    time.Duration
}

func NewAttemptLimiter(client *Client, namespace string, max int, window time.Duration) (*AttemptLimiter, error) {
	if max < 1 {
		return nil, fmt.Errorf("invalid max attempts: %d, must be positive", max)
	}
	if window <= 0 {
		return nil, fmt.Errorf("invalid window: %v, must be positive", window)
	}
	return &AttemptLimiter{
		client:    client,
		namespace: namespace,
		max:       int64(max),
		window:    window,
	}, nil
}

// buildKey constructs the full key using namespace::key format
func (l *AttemptLimiter) buildKey(key string) string {
	if l.namespace != "" {
		return l.namespace + "::" + key
	}
	return key
}

// Blocked reports whether key already used up its attempts in the current window.
func (l *AttemptLimiter) Blocked(ctx context.Context, key string) (bool, error) {
	count, err := l.client.GetClient().Get(ctx, l.buildKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read attempts: %w", err)
	}
	return count >= l.max, nil
}

// Hit records one attempt for key and returns the attempts in the current window.
func (l *AttemptLimiter) Hit(ctx context.Context, key string) (int64, error) {
	count, err := hitScript.Run(ctx, l.client.GetClient(), []string{l.buildKey(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to record attempt: %w", err)
	}
	return count, nil
}

// Reset forgets every attempt recorded for key.
func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Delete(ctx, l.buildKey(key)); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}
