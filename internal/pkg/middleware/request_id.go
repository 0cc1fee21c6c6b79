package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware propagates the caller's request id or assigns a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(HeaderRequestID, requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request id assigned by RequestIDMiddleware
func GetRequestID(c echo.Context) string {
	if id := c.Response().Header().Get(HeaderRequestID); id != "" {
		return id
	}
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return c.Request().Header.Get(HeaderRequestID)
}
