package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// UserGateway persists users. Finders return (nil, nil) when nothing matches.
type UserGateway interface {
	FindAll(ctx context.Context, offset int, limit int) ([]entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameOrEmail(ctx context.Context, username string, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, user *entity.User) error
}
