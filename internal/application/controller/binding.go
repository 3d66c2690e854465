package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/exception"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

// bindBody decodes the request body into dto and validates it. A body that
// cannot be decoded is a 400, a decoded body that breaks a rule a 422.
func bindBody(c echo.Context, dto any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msg.GetMessage("request.error.invalid-body")).SetInternal(err)
	}
	return c.Validate(dto)
}

// bindQuery fills dto from the query string over its defaults and validates it.
func bindQuery(c echo.Context, dto any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dto); err != nil {
		return exception.Validation(msg.GetMessage("request.error.invalid-query"), err)
	}
	return c.Validate(dto)
}

// pathID reads the :id parameter. Only a value that is not an integer is rejected;
// non-positive ids go through the regular lookup and miss.
func pathID(c echo.Context) (uint, error) {
	id, err := numberutils.ToID(c.Param("id"))
	if err != nil {
		return 0, exception.Validation(msg.GetMessage("request.error.invalid-id", c.Param("id")), err)
	}
	return id, nil
}
