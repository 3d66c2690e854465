package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
)

func TestSQLHealthDBGateway_Health(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()
	gateway := NewSQLHealthDBGateway(sqlDB)

	mock.ExpectPing()
	status := gateway.Health(context.Background())
	assert.Equal(t, model.StatusUp, status.Status)
	assert.Contains(t, status.Details, "open_connections")

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	status = gateway.Health(context.Background())
	assert.Equal(t, model.StatusDown, status.Status)
	assert.Equal(t, "connection refused", status.Details["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
