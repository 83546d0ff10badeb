package usecase

import "context"

// --- Input DTOs ---

// ResetWithTokenInput carries a link-based password reset submission.
type ResetWithTokenInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
	IPAddress       string
}

// ResetWithCodeInput carries a code-based password reset submission.
type ResetWithCodeInput struct {
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
	IPAddress       string
}

// PasswordResetUsecase defines the interface for both password recovery
// flows: an emailed single-use link and an emailed one-time code.
type PasswordResetUsecase interface {
	// RequestResetLink issues a reset token and mails a link. It succeeds
	// even when the email is unknown so callers cannot probe for accounts.
	RequestResetLink(ctx context.Context, email string, ip string) error

	// ResetWithToken consumes a reset token and stores the new password.
	ResetWithToken(ctx context.Context, input ResetWithTokenInput) error

	// RequestResetCode issues a reset code and mails it. Same
	// anti-enumeration behavior as RequestResetLink.
	RequestResetCode(ctx context.Context, email string, ip string) error

	// ResetWithCode consumes a reset code and stores the new password.
	ResetWithCode(ctx context.Context, input ResetWithCodeInput) error
}
