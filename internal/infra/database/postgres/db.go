// Package postgres opens the database/sql pool over lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"todo-api/pkg/resource"
)

const pingTimeout = 5 * time.Second

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ConfigFromProperties reads the app.db.* properties.
func ConfigFromProperties() Config {
	return Config{
		URL:             resource.GetString("app.db.url"),
		MaxOpenConns:    resource.GetIntOrDefault("app.db.max-open-conns", 10),
		MaxIdleConns:    resource.GetIntOrDefault("app.db.max-idle-conns", 5),
		ConnMaxLifetime: resource.GetDurationOrDefault("app.db.conn-max-lifetime", 30*time.Minute),
	}
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("database url cannot be empty")
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return fmt.Errorf("connection pool sizes must be non-negative")
	}
	return nil
}

// Open connects to postgres and checks the connection with a ping.
func Open(ctx context.Context, config Config) (*sql.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}
