package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
)

func TestNewUserPublic_OmitsCredentials(t *testing.T) {
	user := entity.User{ID: 1, Username: "lucas", Email: "lucas@exemplo.com", Password: "hash"}

	body, err := json.Marshal(NewUserPublic(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"username":"lucas","email":"lucas@exemplo.com"}`, string(body))
}

func TestNewUserList_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(NewUserList(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"users":[]}`, string(body))
}

func TestNewTodoList(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	todos := []entity.Todo{{
		ID: 1, Title: "Test Todo", Description: "desc", State: entity.TodoStateDraft,
		UserID: 9, CreatedAt: at, UpdatedAt: at,
	}}

	body, err := json.Marshal(NewTodoList(todos))
	require.NoError(t, err)

	assert.JSONEq(t, `{"todos":[{"id":1,"title":"Test Todo","description":"desc","state":"draft",
		"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]}`, string(body))
}

func TestNewFilterTodo_Defaults(t *testing.T) {
	filter := NewFilterTodo()

	assert.Equal(t, 0, filter.Offset)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Empty(t, filter.Title)
}

func TestNewHealthResponse(t *testing.T) {
	up := ComponentHealthStatus{Status: StatusUp}
	down := ComponentHealthStatus{Status: StatusDown}
	unknown := ComponentHealthStatus{Status: StatusUnknown}

	assert.Equal(t, StatusUp, NewHealthResponse(up, up).Status)
	assert.Equal(t, StatusUp, NewHealthResponse(up, unknown).Status)
	assert.Equal(t, StatusDown, NewHealthResponse(up, down).Status)
	assert.Equal(t, StatusDown, NewHealthResponse(down, unknown).Status)
	assert.Equal(t, StatusDown, NewHealthResponse(unknown, up).Status)
}
