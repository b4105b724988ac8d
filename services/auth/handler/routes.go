package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/services/auth/handler/http"
)

// Handler wires the auth HTTP handlers to routes
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes mounts the public /auth routes behind the given middleware, typically an IP rate limiter
func (h *Handler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", mw...)
	authGroup.POST("/otp/send", h.authHandler.SendLoginCode)
	authGroup.POST("/otp/verify", h.authHandler.VerifyLogin)
	authGroup.POST("/signup/send", h.authHandler.SendSignupCode)
	authGroup.POST("/signup/verify", h.authHandler.VerifySignup)
}
