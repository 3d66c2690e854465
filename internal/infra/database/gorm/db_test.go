package gorm

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todo-api/pkg/log"
)

func TestZapWriter(t *testing.T) {
	var buf bytes.Buffer
	log.Init(zapcore.AddSync(&buf), zap.InfoLevel)
	t.Cleanup(func() { log.Init(zapcore.AddSync(os.Stdout), zap.InfoLevel) })

	zapWriter{}.Printf("slow sql %dms", 250)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slow sql 250ms", entry["msg"])
}

func TestOpen_WrapsExistingPool(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	db, err := Open(sqlDB)
	require.NoError(t, err)

	pool, err := db.DB()
	require.NoError(t, err)
	assert.Same(t, sqlDB, pool)
	assert.NoError(t, mock.ExpectationsWereMet())
}
