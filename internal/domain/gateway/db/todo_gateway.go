package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway persists todos. Every read is scoped to the owning user and
// finders return (nil, nil) when nothing matches.
type TodoGateway interface {
	FindAllByUser(ctx context.Context, userID uint, filter model.FilterTodo) ([]entity.Todo, error)
	FindByIDAndUser(ctx context.Context, id uint, userID uint) (*entity.Todo, error)

	Create(ctx context.Context, todo *entity.Todo) error
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, todo *entity.Todo) error
}
