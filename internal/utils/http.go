package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps domain sentinel errors to HTTP responses
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrRouteNotFound), errors.Is(err, models.ErrNoPosition):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidFix), errors.Is(err, models.ErrInvalidRoute),
		errors.Is(err, models.ErrInvalidQuery):
		return BadRequestResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}

// ParseJSONResponse decodes a Response envelope and unmarshals its data into target
func ParseJSONResponse(body []byte, target interface{}) error {
	var resp struct {
		Success bool            `json:"success"`
		Error   string          `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("request failed: %s", resp.Error)
	}
	if len(resp.Data) == 0 || target == nil {
		return nil
	}
	return json.Unmarshal(resp.Data, target)
}
