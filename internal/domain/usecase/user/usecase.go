package user

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	Create(ctx context.Context, schema model.UserSchema) (*entity.User, error)
	FindAll(ctx context.Context, page model.FilterPage) ([]entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// Update and Delete act only on the caller's own account.
	Update(ctx context.Context, current *entity.User, id uint, schema model.UserSchema) (*entity.User, error)
	Delete(ctx context.Context, current *entity.User, id uint) error
}
