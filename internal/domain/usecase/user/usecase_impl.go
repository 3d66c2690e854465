package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/security"
)

type userUseCase struct {
	gateway db.UserGateway
	tx      db.TxManager
	hasher  security.PasswordHasher
}

func NewUserUseCase(gateway db.UserGateway, tx db.TxManager, hasher security.PasswordHasher) UseCase {
	return &userUseCase{
		gateway: gateway,
		tx:      tx,
		hasher:  hasher,
	}
}

func (uc *userUseCase) Create(ctx context.Context, schema model.UserSchema) (*entity.User, error) {
	existing, err := uc.gateway.FindByUsernameOrEmail(ctx, schema.Username, schema.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == schema.Username {
			return nil, exception.Conflict(msg.GetMessage("user.error.username-exists"))
		}
		return nil, exception.Conflict(msg.GetMessage("user.error.email-exists"))
	}

	hashed, err := uc.hasher.Hash(schema.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: schema.Username,
		Email:    schema.Email,
		Password: hashed,
	}
	if err := uc.gateway.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, db.ErrDuplicatedKey) {
			return nil, exception.Conflict(msg.GetMessage("user.error.conflict"), err)
		}
		return nil, err
	}

	log.Info(msg.GetMessage("user.created", user.Username), zap.Uint("user_id", user.ID))
	return user, nil
}

func (uc *userUseCase) FindAll(ctx context.Context, page model.FilterPage) ([]entity.User, error) {
	return uc.gateway.FindAll(ctx, page.Offset, page.Limit)
}

func (uc *userUseCase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exception.NotFound(msg.GetMessage("user.error.not-found"))
	}
	return user, nil
}

func (uc *userUseCase) Update(ctx context.Context, current *entity.User, id uint, schema model.UserSchema) (*entity.User, error) {
	if current.ID != id {
		return nil, exception.Forbidden(msg.GetMessage("user.error.forbidden"))
	}

	hashed, err := uc.hasher.Hash(schema.Password)
	if err != nil {
		return nil, err
	}

	var updated *entity.User
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := uc.gateway.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return exception.NotFound(msg.GetMessage("user.error.not-found"))
		}

		user.Username = schema.Username
		user.Email = schema.Email
		user.Password = hashed
		if err := uc.gateway.Update(ctx, user); err != nil {
			if errors.Is(err, db.ErrDuplicatedKey) {
				return exception.Conflict(msg.GetMessage("user.error.conflict"), err)
			}
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *userUseCase) Delete(ctx context.Context, current *entity.User, id uint) error {
	if current.ID != id {
		return exception.Forbidden(msg.GetMessage("user.error.forbidden"))
	}

	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := uc.gateway.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return exception.NotFound(msg.GetMessage("user.error.not-found"))
		}
		return uc.gateway.Delete(ctx, user)
	})
}
