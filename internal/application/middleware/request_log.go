package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware with custom log output.
// The error handler runs inside the middleware so the logged status is the one sent.
func SetupRequestLogger(e *echo.Echo, contextPath string) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		Skipper:      quietPaths(contextPath),
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
				return nil
			}

			fields = append(fields, zap.Error(v.Error))
			message := msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
			if v.Status >= 500 {
				log.Error(message, fields...)
			} else {
				log.Info(message, fields...)
			}
			return nil
		},
	}))
}

// quietPaths skips logging for health check and swagger requests under contextPath.
func quietPaths(contextPath string) echomw.Skipper {
	health := contextPath + "/health"
	swagger := contextPath + "/swagger/"
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		return path == health || strings.HasPrefix(path, swagger)
	}
}
