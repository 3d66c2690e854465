package cache

import (
	"context"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(checker *redis.HealthChecker) *RedisHealthGateway {
	return &RedisHealthGateway{checker: checker}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}

// DisabledHealthGateway reports UNKNOWN for a cache that is not configured.
type DisabledHealthGateway struct{}

var _ HealthGateway = DisabledHealthGateway{}

func (DisabledHealthGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"message": "Cache disabled",
		},
	}
}
