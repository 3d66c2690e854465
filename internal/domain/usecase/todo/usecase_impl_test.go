package todo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	_ "todo-api/configs"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/model"
	"todo-api/internal/testutil/mocks"
)

var ctx = context.Background()

func newUseCase() (UseCase, *mocks.TodoGateway) {
	gateway := &mocks.TodoGateway{}
	return NewTodoUseCase(gateway, mocks.TxManager{}), gateway
}

func ptr[T any](v T) *T { return &v }

func TestCreate_AssignsOwner(t *testing.T) {
	uc, gateway := newUseCase()
	gateway.On("Create", ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)

	todo, err := uc.Create(ctx, 7, model.TodoSchema{Title: "t", Description: "d", State: entity.TodoStateDraft})
	require.NoError(t, err)
	assert.Equal(t, uint(7), todo.UserID)
	assert.Equal(t, entity.TodoStateDraft, todo.State)
}

func TestCreate_InvalidStateFromStore(t *testing.T) {
	uc, gateway := newUseCase()
	gateway.On("Create", ctx, mock.Anything).Return(fmt.Errorf("%w: %q", entity.ErrInvalidTodoState, "archived"))

	_, err := uc.Create(ctx, 7, model.TodoSchema{Title: "t", State: "archived"})
	assert.True(t, exception.Is(err, exception.KindValidation))
}

func TestFindAll_PassesFilter(t *testing.T) {
	uc, gateway := newUseCase()
	filter := model.NewFilterTodo()
	filter.State = entity.TodoStateDone
	gateway.On("FindAllByUser", ctx, uint(7), filter).Return([]entity.Todo{{ID: 1}}, nil)

	todos, err := uc.FindAll(ctx, 7, filter)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestPatch_UpdatesOnlyGivenFields(t *testing.T) {
	uc, gateway := newUseCase()
	stored := &entity.Todo{ID: 1, Title: "old", Description: "keep", State: entity.TodoStateDraft, UserID: 7}
	gateway.On("FindByIDAndUser", ctx, uint(1), uint(7)).Return(stored, nil)
	gateway.On("Update", ctx, stored).Return(nil)

	todo, err := uc.Patch(ctx, 7, 1, model.TodoUpdate{Title: ptr("new"), State: ptr(entity.TodoStateDoing)})
	require.NoError(t, err)
	assert.Equal(t, "new", todo.Title)
	assert.Equal(t, "keep", todo.Description)
	assert.Equal(t, entity.TodoStateDoing, todo.State)
}

func TestPatch_NotOwnedIsNotFound(t *testing.T) {
	uc, gateway := newUseCase()
	gateway.On("FindByIDAndUser", ctx, uint(1), uint(8)).Return(nil, nil)

	_, err := uc.Patch(ctx, 8, 1, model.TodoUpdate{Title: ptr("x")})
	require.True(t, exception.Is(err, exception.KindNotFound))
	assert.Equal(t, "Task not found", err.Error())
	gateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	uc, gateway := newUseCase()
	stored := &entity.Todo{ID: 1, UserID: 7}
	gateway.On("FindByIDAndUser", ctx, uint(1), uint(7)).Return(stored, nil)
	gateway.On("FindByIDAndUser", ctx, uint(2), uint(7)).Return(nil, nil)
	gateway.On("Delete", ctx, stored).Return(nil)

	require.NoError(t, uc.Delete(ctx, 7, 1))
	assert.True(t, exception.Is(uc.Delete(ctx, 7, 2), exception.KindNotFound))
	gateway.AssertNumberOfCalls(t, "Delete", 1)
}
