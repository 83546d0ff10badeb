package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/delivery/http/response"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication and self-service handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, activityUC usecase.ActivityUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		activityUC: activityUC,
		logger:     logger,
	}
}

type signupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(output.Account), "Account registered, verification code sent")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identityView{
		ID:    output.Identity.ID.String(),
		Email: output.Identity.Email,
		Role:  output.Identity.Role.String(),
	}, "Login successful")
}

// Logout handles the logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), actorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// GetCurrent returns the caller's own account.
func (h *AuthHandler) GetCurrent(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetCurrent(c.Request().Context(), actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Account retrieved")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ChangePassword handles a self-service password change.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		AccountID:       actorID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
		IPAddress:       c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed")
}

type changeEmailRequest struct {
	Password string `json:"password" validate:"required"`
	NewEmail string `json:"newEmail" validate:"required,email"`
}

// ChangeEmail handles a self-service email change.
func (h *AuthHandler) ChangeEmail(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	var req changeEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.ChangeEmail(c.Request().Context(), usecase.ChangeEmailInput{
		AccountID: actorID,
		Password:  req.Password,
		NewEmail:  req.NewEmail,
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email changed, verification code sent")
}

// DeleteAccount handles a self-service account deletion.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), actorID, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// GetActivity returns the caller's own activity trail, newest first.
func (h *AuthHandler) GetActivity(c echo.Context) error {
	actorID, err := requireActorID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetCurrent(c.Request().Context(), actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	entries, err := h.activityUC.GetActivity(c.Request().Context(), account.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityViews(entries), "Activity retrieved")
}

// requireActorID extracts the authenticated actor set by the actor middleware.
func requireActorID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetActorID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing actor identity")
	}

	return id, nil
}
