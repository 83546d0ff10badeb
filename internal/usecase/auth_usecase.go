// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"aegis/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
}

// ChangePasswordInput defines the data for a self-service password change.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
	IPAddress       string
}

// ChangeEmailInput defines the data for a self-service email change.
type ChangeEmailInput struct {
	AccountID uuid.UUID
	Password  string
	NewEmail  string
	IPAddress string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account, pending verification.
type SignupOutput struct {
	Account *entity.Account
}

// LoginOutput returns the authenticated identity after a successful login.
type LoginOutput struct {
	Identity entity.Identity
}

// AuthUsecase defines the interface for account authentication and
// self-service credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates an inactive, unverified USER account and issues an
	// email verification code.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login authenticates a credential pair, enforcing the lockout policy.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout ends the caller's session. Authentication here is stateless,
	// so this is an extension point that only records intent.
	Logout(ctx context.Context, accountID uuid.UUID) error

	// GetCurrent returns the account behind an authenticated identity.
	GetCurrent(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// ChangePassword replaces the caller's password after verifying the
	// current one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// ChangeEmail moves the account to a new address and re-triggers
	// email verification.
	ChangeEmail(ctx context.Context, input ChangeEmailInput) error

	// DeleteAccount removes the caller's account permanently.
	DeleteAccount(ctx context.Context, accountID uuid.UUID, ip string) error
}
