// Package cache builds the optional redis backed login limiter.
package cache

import (
	"time"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

const limiterNamespace = "todo-api::login"

// Components are the gateways backed by the cache, plus a close func for the client.
type Components struct {
	Limiter cache.LoginLimiter
	Health  cache.HealthGateway
	Close   func() error
}

// ConfigFromProperties reads the app.redis.* properties.
func ConfigFromProperties() *redis.Config {
	return redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.redis.database", 0))
}

// NewComponents returns the redis backed limiter when app.auth.login-limit.enabled
// is set, and no-op gateways otherwise.
func NewComponents() (Components, error) {
	if !resource.GetBool("app.auth.login-limit.enabled") {
		return Components{
			Limiter: cache.NoopLoginLimiter{},
			Health:  cache.DisabledHealthGateway{},
			Close:   func() error { return nil },
		}, nil
	}

	config := ConfigFromProperties()
	client, err := redis.NewClient(config)
	if err != nil {
		return Components{}, err
	}

	attempts, err := redis.NewAttemptLimiter(client, limiterNamespace,
		resource.GetIntOrDefault("app.auth.login-limit.max-attempts", 5),
		resource.GetDurationOrDefault("app.auth.login-limit.window", 15*time.Minute))
	if err != nil {
		_ = client.Close()
		return Components{}, err
	}

	log.Info(msg.GetMessage("redis.connected", config.Addr()))
	return Components{
		Limiter: cache.NewRedisLoginLimiter(attempts),
		Health:  cache.NewRedisHealthGateway(redis.NewHealthChecker(client)),
		Close:   client.Close,
	}, nil
}
