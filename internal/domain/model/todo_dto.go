package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

type TodoSchema struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Description string           `json:"description" validate:"max=1024"`
	State       entity.TodoState `json:"state" validate:"required,oneof=draft todo doing done"`
}

// TodoUpdate holds a partial update; nil fields are left untouched.
type TodoUpdate struct {
	Title       *string           `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string           `json:"description" validate:"omitempty,max=1024"`
	State       *entity.TodoState `json:"state" validate:"omitempty,oneof=draft todo doing done"`
}

type TodoPublic struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	State       entity.TodoState `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type TodoList struct {
	Todos []TodoPublic `json:"todos"`
}

func NewTodoPublic(todo entity.Todo) TodoPublic {
	return TodoPublic{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		State:       todo.State,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func NewTodoList(todos []entity.Todo) TodoList {
	list := TodoList{Todos: make([]TodoPublic, 0, len(todos))}
	for _, todo := range todos {
		list.Todos = append(list.Todos, NewTodoPublic(todo))
	}
	return list
}
