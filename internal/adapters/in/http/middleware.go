package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs every request with its method, path, status
// and duration through the global zap logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			zap.L().Info(
				"got incoming HTTP request",
				zap.String("uri", c.Request().RequestURI),
				zap.String("method", c.Request().Method),
				zap.Duration("duration", time.Since(start)),
				zap.Int("status", c.Response().Status),
			)

			return err
		}
	}
}
