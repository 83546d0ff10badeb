package repository

import (
	"context"
	"errors"

	"aegis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCodeNotFound is a domain-specific error returned when no pending
// one-time code exists for a (purpose, email) pair.
var ErrCodeNotFound = errors.New("one-time code not found")

// OneTimeCodeRepository defines persistence for short-lived numeric codes.
// The storage enforces at most one live code per (purpose, email) pair.
type OneTimeCodeRepository interface {
	// FindByEmail retrieves the pending code for the purpose and email.
	FindByEmail(ctx context.Context, purpose entity.CodePurpose, email string) (*entity.OneTimeCode, error)

	// Create persists a freshly issued code.
	Create(ctx context.Context, code *entity.OneTimeCode) error

	// Update persists attempt-counter and verified-flag changes.
	Update(ctx context.Context, code *entity.OneTimeCode) error

	// Delete removes a consumed code record.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByEmail removes any pending code for the purpose and email.
	// Deleting when none exists is not an error.
	DeleteByEmail(ctx context.Context, purpose entity.CodePurpose, email string) error
}
