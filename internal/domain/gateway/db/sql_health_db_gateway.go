package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"todo-api/internal/domain/model"
)

const healthPingTimeout = 2 * time.Second

type SQLHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	stats := gateway.DB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":          string(model.StatusUp),
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"idle":             strconv.Itoa(stats.Idle),
		},
	}
}
