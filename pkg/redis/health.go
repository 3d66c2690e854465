package redis

import (
	"context"
	"strconv"
	"time"
)

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports the pool state
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

// HealthCheck pings the server within the checker timeout.
func (h *HealthChecker) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	if err := h.client.Ping(ctx); err != nil {
		details["message"] = "ping failed: " + err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.GetClient().PoolStats()
	details["message"] = string(StatusUp)
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return HealthCheck{Status: StatusUp, Details: details}
}
