package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware turns a handler panic into a logged 500 response
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	if appLogger == nil {
		appLogger = logger.GetGlobalLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, appLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, appLogger *logger.AppLogger) {
	requestID := GetRequestID(c)

	appLogger.Error("Panic recovered during request processing",
		logger.String("panic_value", fmt.Sprintf("%v", r)),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}

	body := map[string]interface{}{
		"success": false,
		"error":   "Internal server error",
		"code":    http.StatusInternalServerError,
	}
	if requestID != "" {
		body["request_id"] = requestID
	}
	if err := c.JSON(http.StatusInternalServerError, body); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
