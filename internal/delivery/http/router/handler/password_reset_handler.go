package handler

import (
	"log/slog"
	"net/http"

	"aegis/internal/delivery/http/response"
	"aegis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordResetHandler holds dependencies for the password recovery handlers.
type PasswordResetHandler struct {
	uc     usecase.PasswordResetUsecase
	logger *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler, injected by Fx.
func NewPasswordResetHandler(uc usecase.PasswordResetUsecase, logger *slog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{
		uc:     uc,
		logger: logger,
	}
}

type resetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestLink mails a single-use reset link. The response is identical
// whether or not the email belongs to an account.
func (h *PasswordResetHandler) RequestLink(c echo.Context) error {
	var req resetRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestResetLink(c.Request().Context(), req.Email, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the email is registered, a reset link has been sent")
}

type resetWithTokenRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ResetWithToken consumes a reset token and stores the new password.
func (h *PasswordResetHandler) ResetWithToken(c echo.Context) error {
	var req resetWithTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ResetWithToken(c.Request().Context(), usecase.ResetWithTokenInput{
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
		IPAddress:       c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}

// RequestCode mails a one-time reset code. Same anti-enumeration behavior
// as RequestLink.
func (h *PasswordResetHandler) RequestCode(c echo.Context) error {
	var req resetRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestResetCode(c.Request().Context(), req.Email, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the email is registered, a reset code has been sent")
}

type resetWithCodeRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Code            string `json:"code" validate:"required,len=6,numeric"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ResetWithCode consumes a reset code and stores the new password.
func (h *PasswordResetHandler) ResetWithCode(c echo.Context) error {
	var req resetWithCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ResetWithCode(c.Request().Context(), usecase.ResetWithCodeInput{
		Email:           req.Email,
		Code:            req.Code,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
		IPAddress:       c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}
