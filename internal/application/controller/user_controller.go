package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/user"
	"todo-api/pkg/msg"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
	bearer  echo.MiddlewareFunc
}

func NewUserController(api *echo.Group, useCase user.UseCase, bearer echo.MiddlewareFunc) *UserController {
	return &UserController{api: api, useCase: useCase, bearer: bearer}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	users := controller.api.Group("/users")
	users.POST("", controller.Create)
	users.GET("", controller.FindAll)
	users.GET("/:id", controller.FindByID)
	users.PUT("/:id", controller.Update, controller.bearer)
	users.DELETE("/:id", controller.Delete, controller.bearer)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.UserSchema true "New user"
// @Success 201 {object} model.UserPublic
// @Failure 409 {object} model.ErrorDetail "Username or email already exists"
// @Failure 422 {object} model.ErrorDetail
// @Router /users [post]
func (controller *UserController) Create(c echo.Context) error {
	var schema model.UserSchema
	if err := bindBody(c, &schema); err != nil {
		return err
	}

	created, err := controller.useCase.Create(c.Request().Context(), schema)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.NewUserPublic(*created))
}

// FindAll godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} model.UserList
// @Router /users [get]
func (controller *UserController) FindAll(c echo.Context) error {
	page := model.NewFilterPage()
	if err := bindQuery(c, &page); err != nil {
		return err
	}

	users, err := controller.useCase.FindAll(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewUserList(users))
}

// FindByID godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} model.UserPublic
// @Failure 404 {object} model.ErrorDetail "User Not Found"
// @Router /users/{id} [get]
func (controller *UserController) FindByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewUserPublic(*found))
}

// Update godoc
// @Summary Replace the caller's own user
// @Tags users
// @Accept json
// @Produce json
// @Security OAuth2Password
// @Param id path int true "User id"
// @Param user body model.UserSchema true "New credentials"
// @Success 200 {object} model.UserPublic
// @Failure 401 {object} model.ErrorDetail
// @Failure 403 {object} model.ErrorDetail "Not enough permissions"
// @Failure 409 {object} model.ErrorDetail "Username or Email already exists"
// @Router /users/{id} [put]
func (controller *UserController) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var schema model.UserSchema
	if err := bindBody(c, &schema); err != nil {
		return err
	}

	updated, err := controller.useCase.Update(c.Request().Context(), middleware.CurrentUser(c), id, schema)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewUserPublic(*updated))
}

// Delete godoc
// @Summary Delete the caller's own user and its todos
// @Tags users
// @Produce json
// @Security OAuth2Password
// @Param id path int true "User id"
// @Success 200 {object} model.Message
// @Failure 401 {object} model.ErrorDetail
// @Failure 403 {object} model.ErrorDetail "Not enough permissions"
// @Router /users/{id} [delete]
func (controller *UserController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Message{Message: msg.GetMessage("user.deleted")})
}
