package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/pkg/msg"
)

const (
	currentUserKey = "current_user"
	bearerTokenKey = "bearer_token"
	bearerScheme   = "Bearer"
)

// BearerAuth rejects requests without a valid bearer token and stores the
// authenticated user in the context.
func BearerAuth(useCase auth.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := parseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(c)
			}

			user, err := useCase.Authenticate(c.Request().Context(), token)
			if err != nil {
				if exception.Is(err, exception.KindUnauthorized) {
					return unauthorized(c, err)
				}
				return err
			}

			c.Set(currentUserKey, user)
			c.Set(bearerTokenKey, token)
			return next(c)
		}
	}
}

func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c echo.Context, cause ...error) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerScheme)
	return exception.Unauthorized(msg.GetMessage("auth.error.credentials"), cause...)
}

// CurrentUser returns the user set by BearerAuth.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(currentUserKey).(*entity.User)
	return user
}

// BearerToken returns the raw token accepted by BearerAuth.
func BearerToken(c echo.Context) string {
	token, _ := c.Get(bearerTokenKey).(string)
	return token
}
