package handler

import (
	"log/slog"
	"net/http"

	"aegis/internal/delivery/http/response"
	"aegis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for email verification handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SendCode issues a fresh verification code, superseding any pending one.
func (h *VerificationHandler) SendCode(c echo.Context) error {
	var req sendCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send code input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendVerificationCode(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// VerifyEmail consumes a pending code and activates the account.
func (h *VerificationHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), req.Email, req.Code, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}
