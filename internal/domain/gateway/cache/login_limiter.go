package cache

import "context"

// LoginLimiter tracks failed login attempts per identity.
type LoginLimiter interface {
	Blocked(ctx context.Context, identity string) (bool, error)
	Fail(ctx context.Context, identity string) error
	Succeed(ctx context.Context, identity string) error
}

// NoopLoginLimiter never blocks. It is used when the limiter is disabled.
type NoopLoginLimiter struct{}

var _ LoginLimiter = NoopLoginLimiter{}

func (NoopLoginLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }

func (NoopLoginLimiter) Fail(context.Context, string) error { return nil }

func (NoopLoginLimiter) Succeed(context.Context, string) error { return nil }
