package model

import "todo-api/internal/domain/entity"

type UserSchema struct {
	Username string `json:"username" form:"username" validate:"required,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// UserPublic is the user representation exposed by the API, without credentials.
type UserPublic struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserList struct {
	Users []UserPublic `json:"users"`
}

func NewUserPublic(user entity.User) UserPublic {
	return UserPublic{ID: user.ID, Username: user.Username, Email: user.Email}
}

func NewUserList(users []entity.User) UserList {
	list := UserList{Users: make([]UserPublic, 0, len(users))}
	for _, user := range users {
		list.Users = append(list.Users, NewUserPublic(user))
	}
	return list
}
