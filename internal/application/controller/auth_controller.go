package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
	bearer  echo.MiddlewareFunc
}

func NewAuthController(api *echo.Group, useCase auth.UseCase, bearer echo.MiddlewareFunc) *AuthController {
	return &AuthController{api: api, useCase: useCase, bearer: bearer}
}

// InitAuthRoutes initializes token routes
func (controller *AuthController) InitAuthRoutes() {
	group := controller.api.Group("/auth")
	group.POST("/token", controller.Token)
	group.POST("/refresh_token", controller.RefreshToken, controller.bearer)
}

// Token godoc
// @Summary Exchange email and password for an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "User email"
// @Param password formData string true "Password"
// @Success 200 {object} model.Token
// @Failure 401 {object} model.ErrorDetail "Incorrect email or password"
// @Failure 429 {object} model.ErrorDetail "Too many login attempts"
// @Router /auth/token [post]
func (controller *AuthController) Token(c echo.Context) error {
	var form model.LoginForm
	if err := bindBody(c, &form); err != nil {
		return err
	}

	token, err := controller.useCase.Login(c.Request().Context(), form)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}

// RefreshToken godoc
// @Summary Renew the caller's access token
// @Tags auth
// @Produce json
// @Security OAuth2Password
// @Success 200 {object} model.Token
// @Failure 401 {object} model.ErrorDetail "Could not validate credentials"
// @Router /auth/refresh_token [post]
func (controller *AuthController) RefreshToken(c echo.Context) error {
	token, err := controller.useCase.Refresh(c.Request().Context(), middleware.BearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}
