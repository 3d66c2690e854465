package auth

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/security"
)

type authUseCase struct {
	users   db.UserGateway
	hasher  security.PasswordHasher
	tokens  security.TokenProvider
	limiter cache.LoginLimiter
}

func NewAuthUseCase(users db.UserGateway, hasher security.PasswordHasher, tokens security.TokenProvider, limiter cache.LoginLimiter) UseCase {
	if limiter == nil {
		limiter = cache.NoopLoginLimiter{}
	}
	return &authUseCase{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
	}
}

func (uc *authUseCase) Login(ctx context.Context, form model.LoginForm) (*model.Token, error) {
	blocked, err := uc.limiter.Blocked(ctx, form.Username)
	if err != nil {
		log.Warn(msg.GetMessage("redis.error.limiter", err), zap.Error(err))
	}
	if blocked {
		return nil, exception.TooManyRequests(msg.GetMessage("auth.error.too-many-attempts"))
	}

	user, err := uc.users.FindByEmail(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(form.Password, user.Password) {
		if err := uc.limiter.Fail(ctx, form.Username); err != nil {
			log.Warn(msg.GetMessage("redis.error.limiter", err), zap.Error(err))
		}
		return nil, exception.Unauthorized(msg.GetMessage("auth.error.invalid-login"))
	}

	if err := uc.limiter.Succeed(ctx, form.Username); err != nil {
		log.Warn(msg.GetMessage("redis.error.limiter", err), zap.Error(err))
	}
	return uc.issue(user.Email)
}

func (uc *authUseCase) Refresh(_ context.Context, token string) (*model.Token, error) {
	refreshed, err := uc.tokens.Refresh(token)
	if err != nil {
		return nil, exception.Unauthorized(msg.GetMessage("auth.error.credentials"), err)
	}
	return &model.Token{AccessToken: refreshed, TokenType: model.TokenTypeBearer}, nil
}

func (uc *authUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, exception.Unauthorized(msg.GetMessage("auth.error.credentials"), err)
	}

	user, err := uc.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exception.Unauthorized(msg.GetMessage("auth.error.credentials"))
	}
	return user, nil
}

func (uc *authUseCase) issue(subject string) (*model.Token, error) {
	token, err := uc.tokens.Issue(subject)
	if err != nil {
		return nil, err
	}
	return &model.Token{AccessToken: token, TokenType: model.TokenTypeBearer}, nil
}
