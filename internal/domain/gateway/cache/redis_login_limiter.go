package cache

import (
	"context"
	"strings"

	"todo-api/pkg/redis"
)

type RedisLoginLimiter struct {
	limiter *redis.AttemptLimiter
}

var _ LoginLimiter = (*RedisLoginLimiter)(nil)

func NewRedisLoginLimiter(limiter *redis.AttemptLimiter) *RedisLoginLimiter {
	return &RedisLoginLimiter{limiter: limiter}
}

func (gateway *RedisLoginLimiter) Blocked(ctx context.Context, identity string) (bool, error) {
	return gateway.limiter.Blocked(ctx, normalize(identity))
}

func (gateway *RedisLoginLimiter) Fail(ctx context.Context, identity string) error {
	_, err := gateway.limiter.Hit(ctx, normalize(identity))
	return err
}

func (gateway *RedisLoginLimiter) Succeed(ctx context.Context, identity string) error {
	return gateway.limiter.Reset(ctx, normalize(identity))
}

// normalize keys attempts case-insensitively so casing cannot reset the window.
func normalize(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}
