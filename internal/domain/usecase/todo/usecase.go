package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// UseCase manages the todos of one user. A todo owned by someone else is
// reported as not found.
type UseCase interface {
	Create(ctx context.Context, userID uint, schema model.TodoSchema) (*entity.Todo, error)
	FindAll(ctx context.Context, userID uint, filter model.FilterTodo) ([]entity.Todo, error)
	Patch(ctx context.Context, userID uint, id uint, update model.TodoUpdate) (*entity.Todo, error)
	Delete(ctx context.Context, userID uint, id uint) error
}
