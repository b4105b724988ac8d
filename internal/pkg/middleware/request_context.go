package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/requestcontext"
)

// RequestContextMiddleware stamps request and trace ids on the request context and response headers
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := requestcontext.FromEchoContext(c, serviceName)
			c.SetRequest(c.Request().WithContext(requestcontext.With(c.Request().Context(), rc)))

			h := c.Response().Header()
			h.Set(echo.HeaderXRequestID, rc.RequestID)
			h.Set(requestcontext.HeaderTraceID, rc.TraceID)

			return next(c)
		}
	}
}
