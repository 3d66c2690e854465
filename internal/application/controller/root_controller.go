package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type RootController struct {
	api *echo.Group
}

func NewRootController(api *echo.Group) *RootController {
	return &RootController{api: api}
}

// InitRootRoutes serves the greeting on the group root. Trailing slashes are
// stripped before routing, so a prefixed group is reached through "".
func (controller *RootController) InitRootRoutes() {
	controller.api.GET("", controller.Greet)
	controller.api.GET("/", controller.Greet)
}

// Greet godoc
// @Summary Greeting
// @Tags root
// @Produce json
// @Success 200 {object} model.Message
// @Router / [get]
func (controller *RootController) Greet(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Message{Message: msg.GetMessage("root.greeting")})
}
