// Package mocks holds testify mocks of the domain gateways.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type UserGateway struct {
	mock.Mock
}

var _ db.UserGateway = (*UserGateway)(nil)

func (m *UserGateway) FindAll(ctx context.Context, offset int, limit int) ([]entity.User, error) {
	args := m.Called(ctx, offset, limit)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *UserGateway) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserGateway) FindByUsernameOrEmail(ctx context.Context, username string, email string) (*entity.User, error) {
	args := m.Called(ctx, username, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserGateway) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserGateway) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserGateway) Delete(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type TodoGateway struct {
	mock.Mock
}

var _ db.TodoGateway = (*TodoGateway)(nil)

func (m *TodoGateway) FindAllByUser(ctx context.Context, userID uint, filter model.FilterTodo) ([]entity.Todo, error) {
	args := m.Called(ctx, userID, filter)
	todos, _ := args.Get(0).([]entity.Todo)
	return todos, args.Error(1)
}

func (m *TodoGateway) FindByIDAndUser(ctx context.Context, id uint, userID uint) (*entity.Todo, error) {
	args := m.Called(ctx, id, userID)
	todo, _ := args.Get(0).(*entity.Todo)
	return todo, args.Error(1)
}

func (m *TodoGateway) Create(ctx context.Context, todo *entity.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *TodoGateway) Update(ctx context.Context, todo *entity.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *TodoGateway) Delete(ctx context.Context, todo *entity.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

// TxManager runs fn directly, without a database.
type TxManager struct{}

var _ db.TxManager = TxManager{}

func (TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type LoginLimiter struct {
	mock.Mock
}

var _ cache.LoginLimiter = (*LoginLimiter)(nil)

func (m *LoginLimiter) Blocked(ctx context.Context, identity string) (bool, error) {
	args := m.Called(ctx, identity)
	return args.Bool(0), args.Error(1)
}

func (m *LoginLimiter) Fail(ctx context.Context, identity string) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *LoginLimiter) Succeed(ctx context.Context, identity string) error {
	return m.Called(ctx, identity).Error(0)
}

type HealthGateway struct {
	mock.Mock
}

var (
	_ db.HealthDBGateway  = (*HealthGateway)(nil)
	_ cache.HealthGateway   = (*HealthGateway)(nil)
)

func (m *HealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	return m.Called(ctx).Get(0).(model.ComponentHealthStatus)
}
