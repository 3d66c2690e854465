// Package application assembles the HTTP surface: middleware, controllers and docs.
package application

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/validator"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/domain/usecase/user"
)

type UseCases struct {
	User   user.UseCase
	Todo   todo.UseCase
	Auth   auth.UseCase
	Health health.UseCase
}

// NewRouter builds the echo instance serving every route under contextPath.
func NewRouter(contextPath string, useCases UseCases) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	middleware.SetupRequestLogger(e, contextPath)
	e.Use(echomw.Recover())

	api := e.Group(contextPath)
	bearer := middleware.BearerAuth(useCases.Auth)

	controller.NewRootController(api).InitRootRoutes()
	controller.NewHealthController(api, useCases.Health).InitHealthRoutes()
	controller.NewUserController(api, useCases.User, bearer).InitUserRoutes()
	controller.NewAuthController(api, useCases.Auth, bearer).InitAuthRoutes()
	controller.NewTodoController(api, useCases.Todo, bearer).InitTodoRoutes()

	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
