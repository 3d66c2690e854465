package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/exception"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// ErrorHandler renders every error as {"detail": "..."}. Domain errors keep
// their detail, echo errors their message, anything else becomes a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, detail := resolve(err)
	if status >= http.StatusInternalServerError {
		request := c.Request()
		log.Error(msg.GetMessage("app.error.unexpected", request.Method, request.URL.Path, err), zap.Error(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, model.ErrorDetail{Detail: detail})
	}
	if writeErr != nil {
		log.Error(writeErr.Error(), zap.Error(writeErr))
	}
}

func resolve(err error) (int, string) {
	if domainErr, ok := exception.As(err); ok {
		return domainErr.Kind.Status(), domainErr.Detail
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, msg.GetMessage("request.error.internal")
		}
		if message, ok := httpErr.Message.(string); ok {
			return httpErr.Code, message
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, msg.GetMessage("request.error.internal")
}
