// Package gorm builds the gorm handle on top of an existing database/sql pool.
package gorm

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/pkg/log"
)

// zapWriter routes gorm's logger through the application logger.
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func newLogger() logger.Interface {
	return logger.New(zapWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Open wraps sqlDB in gorm. Unique violations surface as gorm.ErrDuplicatedKey.
func Open(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return db, nil
}
