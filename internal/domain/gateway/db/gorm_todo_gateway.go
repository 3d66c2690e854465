package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAllByUser(ctx context.Context, userID uint, filter model.FilterTodo) ([]entity.Todo, error) {
	query := conn(ctx, gateway.DB).Where("user_id = ?", userID)

	if filter.Title != "" {
		query = query.Where(`title LIKE ? ESCAPE '\'`, contains(filter.Title))
	}
	if filter.Description != "" {
		query = query.Where(`description LIKE ? ESCAPE '\'`, contains(filter.Description))
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	todos := make([]entity.Todo, 0)
	err := query.Order("id").Offset(filter.Offset).Limit(filter.Limit).Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func contains(part string) string {
	return "%" + likeEscaper.Replace(part) + "%"
}

func (gateway *GormTodoGateway) FindByIDAndUser(ctx context.Context, id uint, userID uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := conn(ctx, gateway.DB).Where("id = ? AND user_id = ?", id, userID).Take(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo *entity.Todo) error {
	return conn(ctx, gateway.DB).Create(todo).Error
}

// Update writes the mutable fields of todo and refreshes updated_at.
func (gateway *GormTodoGateway) Update(ctx context.Context, todo *entity.Todo) error {
	return conn(ctx, gateway.DB).
		Model(todo).
		Select("title", "description", "state", "updated_at").
		Updates(todo).Error
}

func (gateway *GormTodoGateway) Delete(ctx context.Context, todo *entity.Todo) error {
	return conn(ctx, gateway.DB).Delete(todo).Error
}
