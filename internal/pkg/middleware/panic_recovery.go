package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and returns a 500 so one bad request cannot take the process down.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()

					zapLogger.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("request_id", c.Response().Header().Get("X-Request-ID")),
						logger.String("stack_trace", string(stack)),
					)

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
