package usecase

import "context"

// VerificationUsecase defines the interface for the email verification
// code lifecycle.
type VerificationUsecase interface {
	// SendVerificationCode issues a fresh code to the email, superseding
	// any pending one.
	SendVerificationCode(ctx context.Context, email string) error

	// VerifyEmail consumes a pending code. On success the account becomes
	// verified and active.
	VerifyEmail(ctx context.Context, email, code string, ip string) error
}
