package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/testutil/dbtest"
)

func seedUser(t *testing.T, gateway *GormUserGateway, username string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, gateway.Create(context.Background(), user))
	return user
}

func TestGormUserGateway_CreateAndFind(t *testing.T) {
	gateway := NewGormUserGateway(dbtest.New(t))
	ctx := context.Background()

	created := seedUser(t, gateway, "alice")
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := gateway.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := gateway.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	either, err := gateway.FindByUsernameOrEmail(ctx, "nobody", "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, either)
	assert.Equal(t, created.ID, either.ID)
}

func TestGormUserGateway_FindMissingReturnsNil(t *testing.T) {
	gateway := NewGormUserGateway(dbtest.New(t))
	ctx := context.Background()

	user, err := gateway.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = gateway.FindByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGormUserGateway_CreateDuplicate(t *testing.T) {
	gateway := NewGormUserGateway(dbtest.New(t))
	seedUser(t, gateway, "alice")

	err := gateway.Create(context.Background(), &entity.User{Username: "alice", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicatedKey)

	err = gateway.Create(context.Background(), &entity.User{Username: "other", Email: "alice@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicatedKey)
}

func TestGormUserGateway_FindAllPages(t *testing.T) {
	gateway := NewGormUserGateway(dbtest.New(t))
	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		seedUser(t, gateway, name)
	}

	users, err := gateway.FindAll(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].Username)
	assert.Equal(t, "u3", users[1].Username)

	users, err = gateway.FindAll(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)
}

func TestGormUserGateway_Update(t *testing.T) {
	gateway := NewGormUserGateway(dbtest.New(t))
	ctx := context.Background()
	user := seedUser(t, gateway, "alice")
	other := seedUser(t, gateway, "bob")

	user.Username = "alice2"
	user.Email = "alice2@example.com"
	user.Password = "new-hash"
	require.NoError(t, gateway.Update(ctx, user))

	stored, err := gateway.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", stored.Username)
	assert.Equal(t, "alice2@example.com", stored.Email)
	assert.Equal(t, "new-hash", stored.Password)

	other.Username = "alice2"
	assert.ErrorIs(t, gateway.Update(ctx, other), ErrDuplicatedKey)
}

func TestGormUserGateway_DeleteCascadesTodos(t *testing.T) {
	database := dbtest.New(t)
	users := NewGormUserGateway(database)
	todos := NewGormTodoGateway(database)
	ctx := context.Background()

	owner := seedUser(t, users, "alice")
	keeper := seedUser(t, users, "bob")
	require.NoError(t, todos.Create(ctx, &entity.Todo{Title: "a", Description: "a", State: entity.TodoStateDraft, UserID: owner.ID}))
	kept := &entity.Todo{Title: "b", Description: "b", State: entity.TodoStateDraft, UserID: keeper.ID}
	require.NoError(t, todos.Create(ctx, kept))

	require.NoError(t, users.Delete(ctx, owner))

	gone, err := users.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var remaining int64
	require.NoError(t, database.Model(&entity.Todo{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	found, err := todos.FindByIDAndUser(ctx, kept.ID, keeper.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
