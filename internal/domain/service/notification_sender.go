package service

import (
	"context"

	"aegis/internal/domain/entity"
)

// NotificationSender defines outbound delivery of security messages to
// account holders. Implementations must not log the code or token values.
type NotificationSender interface {
	// SendCode delivers a one-time numeric code for the given purpose.
	SendCode(ctx context.Context, email string, purpose entity.CodePurpose, code string) error

	// SendResetLink delivers a password reset link carrying the token.
	SendResetLink(ctx context.Context, email string, token string) error
}
