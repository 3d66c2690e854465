package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindAll(ctx context.Context, offset int, limit int) ([]entity.User, error) {
	users := make([]entity.User, 0)
	err := conn(ctx, gateway.DB).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return gateway.first(ctx, "id = ?", id)
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return gateway.first(ctx, "email = ?", email)
}

func (gateway *GormUserGateway) FindByUsernameOrEmail(ctx context.Context, username string, email string) (*entity.User, error) {
	return gateway.first(ctx, "username = ? OR email = ?", username, email)
}

func (gateway *GormUserGateway) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var user entity.User
	err := conn(ctx, gateway.DB).Where(query, args...).Order("id").Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	return translate(conn(ctx, gateway.DB).Create(user).Error)
}

// Update overwrites the credentials of user and refreshes updated_at.
func (gateway *GormUserGateway) Update(ctx context.Context, user *entity.User) error {
	return translate(conn(ctx, gateway.DB).
		Model(user).
		Select("username", "email", "password", "updated_at").
		Updates(user).Error)
}

// Delete removes user together with every todo it owns.
func (gateway *GormUserGateway) Delete(ctx context.Context, user *entity.User) error {
	return conn(ctx, gateway.DB).Select(clause.Associations).Delete(user).Error
}
