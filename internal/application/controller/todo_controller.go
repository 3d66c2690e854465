package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
	bearer  echo.MiddlewareFunc
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, bearer echo.MiddlewareFunc) *TodoController {
	return &TodoController{api: api, useCase: useCase, bearer: bearer}
}

// InitTodoRoutes initializes todo routes, all behind bearer authentication
func (controller *TodoController) InitTodoRoutes() {
	todos := controller.api.Group("/todos", controller.bearer)
	todos.POST("", controller.Create)
	todos.GET("", controller.FindAll)
	todos.PATCH("/:id", controller.Patch)
	todos.DELETE("/:id", controller.Delete)
}

// Create godoc
// @Summary Create a todo for the caller
// @Tags todos
// @Accept json
// @Produce json
// @Security OAuth2Password
// @Param todo body model.TodoSchema true "New todo"
// @Success 200 {object} model.TodoPublic
// @Failure 401 {object} model.ErrorDetail
// @Failure 422 {object} model.ErrorDetail
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var schema model.TodoSchema
	if err := bindBody(c, &schema); err != nil {
		return err
	}

	created, err := controller.useCase.Create(c.Request().Context(), middleware.CurrentUser(c).ID, schema)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewTodoPublic(*created))
}

// FindAll godoc
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Security OAuth2Password
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Param title query string false "Title substring"
// @Param description query string false "Description substring"
// @Param state query string false "Exact state" Enums(draft, todo, doing, done)
// @Success 200 {object} model.TodoList
// @Failure 401 {object} model.ErrorDetail
// @Failure 422 {object} model.ErrorDetail
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	filter := model.NewFilterTodo()
	if err := bindQuery(c, &filter); err != nil {
		return err
	}

	todos, err := controller.useCase.FindAll(c.Request().Context(), middleware.CurrentUser(c).ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewTodoList(todos))
}

// Patch godoc
// @Summary Partially update one of the caller's todos
// @Tags todos
// @Accept json
// @Produce json
// @Security OAuth2Password
// @Param id path int true "Todo id"
// @Param todo body model.TodoUpdate true "Fields to change"
// @Success 200 {object} model.TodoPublic
// @Failure 404 {object} model.ErrorDetail "Task not found"
// @Router /todos/{id} [patch]
func (controller *TodoController) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var update model.TodoUpdate
	if err := bindBody(c, &update); err != nil {
		return err
	}

	patched, err := controller.useCase.Patch(c.Request().Context(), middleware.CurrentUser(c).ID, id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewTodoPublic(*patched))
}

// Delete godoc
// @Summary Delete one of the caller's todos
// @Tags todos
// @Produce json
// @Security OAuth2Password
// @Param id path int true "Todo id"
// @Success 200 {object} model.Message
// @Failure 404 {object} model.ErrorDetail "Task not found"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := controller.useCase.Delete(c.Request().Context(), middleware.CurrentUser(c).ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Message{Message: msg.GetMessage("todo.deleted")})
}
