package repository

import (
	"context"
	"errors"

	"aegis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetTokenNotFound is a domain-specific error returned when a password
// reset token does not exist.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// ResetTokenRepository defines persistence for single-use password reset
// tokens. The storage enforces token uniqueness and at most one live token
// per email.
type ResetTokenRepository interface {
	// FindByToken retrieves a token record by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// Create persists a freshly issued token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// Delete removes a consumed token record.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByEmail removes any live token for the email.
	// Deleting when none exists is not an error.
	DeleteByEmail(ctx context.Context, email string) error
}
