package todo

import (
	"context"
	"errors"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway db.TodoGateway
	tx      db.TxManager
}

func NewTodoUseCase(gateway db.TodoGateway, tx db.TxManager) UseCase {
	return &todoUseCase{
		gateway: gateway,
		tx:      tx,
	}
}

func (uc *todoUseCase) Create(ctx context.Context, userID uint, schema model.TodoSchema) (*entity.Todo, error) {
	todo := &entity.Todo{
		Title:       schema.Title,
		Description: schema.Description,
		State:       schema.State,
		UserID:      userID,
	}
	if err := uc.gateway.Create(ctx, todo); err != nil {
		return nil, stateError(err)
	}
	return todo, nil
}

func (uc *todoUseCase) FindAll(ctx context.Context, userID uint, filter model.FilterTodo) ([]entity.Todo, error) {
	return uc.gateway.FindAllByUser(ctx, userID, filter)
}

func (uc *todoUseCase) Patch(ctx context.Context, userID uint, id uint, update model.TodoUpdate) (*entity.Todo, error) {
	var patched *entity.Todo
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		todo, err := uc.find(ctx, userID, id)
		if err != nil {
			return err
		}

		if update.Title != nil {
			todo.Title = *update.Title
		}
		if update.Description != nil {
			todo.Description = *update.Description
		}
		if update.State != nil {
			todo.State = *update.State
		}

		if err := uc.gateway.Update(ctx, todo); err != nil {
			return stateError(err)
		}
		patched = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patched, nil
}

func (uc *todoUseCase) Delete(ctx context.Context, userID uint, id uint) error {
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		todo, err := uc.find(ctx, userID, id)
		if err != nil {
			return err
		}
		return uc.gateway.Delete(ctx, todo)
	})
}

func (uc *todoUseCase) find(ctx context.Context, userID uint, id uint) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, exception.NotFound(msg.GetMessage("todo.error.not-found"))
	}
	return todo, nil
}

// stateError turns a state refused by the store into a validation error.
func stateError(err error) error {
	if errors.Is(err, entity.ErrInvalidTodoState) {
		return exception.Validation(err.Error(), err)
	}
	return err
}
