package auth

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Login exchanges an email and password for an access token.
	Login(ctx context.Context, form model.LoginForm) (*model.Token, error)
	// Refresh exchanges a valid token for one with a new expiry.
	Refresh(ctx context.Context, token string) (*model.Token, error)
	// Authenticate resolves the user a bearer token was issued to.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
