package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTodoState is returned when a state outside the enumeration reaches the store.
var ErrInvalidTodoState = errors.New("invalid todo state")

type TodoState string

const (
	TodoStateDraft TodoState = "draft"
	TodoStateTodo  TodoState = "todo"
	TodoStateDoing TodoState = "doing"
	TodoStateDone  TodoState = "done"
)

// TodoStates lists every accepted state in declaration order.
var TodoStates = []TodoState{TodoStateDraft, TodoStateTodo, TodoStateDoing, TodoStateDone}

func (s TodoState) Valid() bool {
	switch s {
	case TodoStateDraft, TodoStateTodo, TodoStateDoing, TodoStateDone:
		return true
	}
	return false
}

// Value rejects states outside the enumeration before they are written.
func (s TodoState) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTodoState, string(s))
	}
	return string(s), nil
}

// Scan rejects stored states outside the enumeration when reading.
func (s *TodoState) Scan(src any) error {
	var value string
	switch v := src.(type) {
	case string:
		value = v
	case []byte:
		value = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTodoState, src)
	}

	state := TodoState(value)
	if !state.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTodoState, value)
	}
	*s = state
	return nil
}

type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	State       TodoState `json:"state" gorm:"type:varchar(10);not null"`
	UserID      uint      `json:"-" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
