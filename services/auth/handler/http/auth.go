package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/piresc/flexwork/services/auth"
)

// AuthHandler handles HTTP requests for OTP login and signup
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// bindAndValidate returns a client-facing message when req cannot be read
func bindAndValidate(c echo.Context, req interface{}) string {
	if err := c.Bind(req); err != nil {
		return "Invalid request payload"
	}
	if err := c.Validate(req); err != nil {
		return utils.ValidationMessage(err)
	}
	return ""
}

// SendLoginCode handles POST /auth/otp/send
func (h *AuthHandler) SendLoginCode(c echo.Context) error {
	var req models.SendCodeRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	if err := h.authUC.RequestLoginCode(c.Request().Context(), req.Email); err != nil {
		return h.respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyLogin handles POST /auth/otp/verify
func (h *AuthHandler) VerifyLogin(c echo.Context) error {
	var req models.VerifyRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	resp, err := h.authUC.Login(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// SendSignupCode handles POST /auth/signup/send
func (h *AuthHandler) SendSignupCode(c echo.Context) error {
	var req models.SendCodeRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	if err := h.authUC.RequestSignupCode(c.Request().Context(), req.Email); err != nil {
		return h.respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifySignup handles POST /auth/signup/verify
func (h *AuthHandler) VerifySignup(c echo.Context) error {
	var req models.VerifyRequest
	if msg := bindAndValidate(c, &req); msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	resp, err := h.authUC.CompleteSignup(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return h.respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed up successfully", resp)
}

func (h *AuthHandler) respondError(c echo.Context, err error) error {
	var rlErr *auth.RateLimitError
	switch {
	case errors.As(err, &rlErr):
		return utils.TooManyRequestsResponse(c, "Too many attempts. Please try again later.", rlErr.RetryAfter)
	case errors.Is(err, auth.ErrRateLimited):
		return utils.TooManyRequestsResponse(c, "Too many attempts. Please try again later.", 0)
	case errors.Is(err, auth.ErrInvalidCode):
		return utils.UnauthorizedResponse(c, "Invalid verification code, please try again.")
	case errors.Is(err, auth.ErrEmailTaken):
		return utils.ConflictResponse(c, "An account with this email already exists.")
	case errors.Is(err, models.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, models.ErrLockTimeout):
		return utils.ServiceUnavailableResponse(c, "Verification is busy. Please try again.")
	}

	logger.ErrorCtx(c.Request().Context(), "Auth request failed", logger.String("path", c.Path()), logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Internal server error")
}
