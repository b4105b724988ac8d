package utils

import (
	"net/http"
	"strconv"
	"time"

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
	Success    bool        `json:"success"`
	Error      string      `json:"error"`
	Code       int         `json:"code,omitempty"`
	RetryAfter int64       `json:"retry_after,omitempty"`
	Details    interface{} `json:"details,omitempty"`
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

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, orDefault(errorMessage, "Unauthorized"))
}

// ForbiddenResponse sends a 403 response. details is echoed back, e.g. the roles that were refused.
func ForbiddenResponse(c echo.Context, errorMessage string, details interface{}) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{
		Success: false,
		Error:   orDefault(errorMessage, "Forbidden"),
		Code:    http.StatusForbidden,
		Details: details,
	})
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, orDefault(errorMessage, "Resource not found"))
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, orDefault(errorMessage, "Conflict"))
}

// TooManyRequestsResponse sends a 429 with a Retry-After header and body hint in whole seconds
func TooManyRequestsResponse(c echo.Context, errorMessage string, retryAfter time.Duration) error {
	seconds := int64((retryAfter + time.Second - 1) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	c.Response().Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success:    false,
		Error:      orDefault(errorMessage, "Too many attempts"),
		Code:       http.StatusTooManyRequests,
		RetryAfter: seconds,
	})
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, orDefault(errorMessage, "Internal server error"))
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, orDefault(errorMessage, "Service unavailable"))
}
