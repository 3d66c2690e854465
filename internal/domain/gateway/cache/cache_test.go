package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestRedisLoginLimiter(t *testing.T) {
	client, _ := newRedis(t)
	attempts, err := redis.NewAttemptLimiter(client, "login", 2, time.Minute)
	require.NoError(t, err)
	limiter := NewRedisLoginLimiter(attempts)
	ctx := context.Background()

	require.NoError(t, limiter.Fail(ctx, "Alice@Example.com"))
	require.NoError(t, limiter.Fail(ctx, "alice@example.com "))

	blocked, err := limiter.Blocked(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, limiter.Succeed(ctx, "ALICE@example.com"))
	blocked, err = limiter.Blocked(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestNoopLoginLimiter(t *testing.T) {
	limiter := NoopLoginLimiter{}
	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.Fail(context.Background(), "a"))
	}
	blocked, err := limiter.Blocked(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestRedisHealthGateway(t *testing.T) {
	client, server := newRedis(t)
	gateway := NewRedisHealthGateway(redis.NewHealthChecker(client))

	assert.Equal(t, model.StatusUp, gateway.Health(context.Background()).Status)

	server.Close()
	assert.Equal(t, model.StatusDown, gateway.Health(context.Background()).Status)
}

func TestDisabledHealthGateway(t *testing.T) {
	assert.Equal(t, model.StatusUnknown, DisabledHealthGateway{}.Health(context.Background()).Status)
}
