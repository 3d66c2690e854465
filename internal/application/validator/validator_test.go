package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/model"
)

func TestValidate_TodoSchema(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&model.TodoSchema{Title: "t", State: entity.TodoStateDraft}))

	err := v.Validate(&model.TodoSchema{Title: "t", State: "test"})
	require.True(t, exception.Is(err, exception.KindValidation))
	assert.Contains(t, err.Error(), "state: input should be one of draft, todo, doing, done")

	err = v.Validate(&model.TodoSchema{State: entity.TodoStateDraft})
	assert.Contains(t, err.Error(), "title: field required")
}

func TestValidate_UserSchema(t *testing.T) {
	v := New()

	err := v.Validate(&model.UserSchema{Username: "alice", Email: "not-an-email", Password: "x"})
	require.True(t, exception.Is(err, exception.KindValidation))
	assert.Contains(t, err.Error(), "email: value is not a valid email address")
}

func TestValidate_FilterTodo(t *testing.T) {
	v := New()

	filter := model.NewFilterTodo()
	filter.Title = "ab"
	filter.Offset = -1
	err := v.Validate(&filter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title: should have at least 3 characters")
	assert.Contains(t, err.Error(), "offset: should be greater than or equal to 0")

	filter = model.NewFilterTodo()
	filter.Description = "a description that is too long"
	assert.Error(t, v.Validate(&filter))

	filter = model.NewFilterTodo()
	filter.Title = "abc"
	filter.State = entity.TodoStateDone
	assert.NoError(t, v.Validate(&filter))
}

func TestValidate_TodoUpdateIsPartial(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&model.TodoUpdate{}))

	state := entity.TodoState("archived")
	assert.Error(t, v.Validate(&model.TodoUpdate{State: &state}))
}
