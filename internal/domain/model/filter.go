package model

import "todo-api/internal/domain/entity"

// DefaultLimit is the page size used when the caller sends no limit.
const DefaultLimit = 100

// FilterPage is offset/limit pagination taken from the query string.
type FilterPage struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0"`
}

func NewFilterPage() FilterPage {
	return FilterPage{Offset: 0, Limit: DefaultLimit}
}

// FilterTodo narrows a todo listing. Title and Description match as substrings, State exactly.
type FilterTodo struct {
	FilterPage
	Title       string           `query:"title" validate:"omitempty,min=3,max=20"`
	Description string           `query:"description" validate:"omitempty,min=3,max=20"`
	State       entity.TodoState `query:"state" validate:"omitempty,oneof=draft todo doing done"`
}

func NewFilterTodo() FilterTodo {
	return FilterTodo{FilterPage: NewFilterPage()}
}
