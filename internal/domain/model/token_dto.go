package model

const TokenTypeBearer = "bearer"

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginForm is the OAuth2 password form; Username carries the user email.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
