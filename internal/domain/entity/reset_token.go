package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is an opaque single-use credential mailed to an account
// owner to authorize a password reset via link. Only one live token may exist
// per email; issuing a new one deletes any prior token.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique identifier for this token record.
	Token     string    // The opaque random token value, unique across all records.
	Email     string    // The email of the owning account, lowercase.
	ExpiresAt time.Time // Tokens are rejected after this instant.
	Used      bool      // Consumption is irreversible; a used token never authorizes again.
	CreatedAt time.Time // Timestamp of when this token was issued.
}

// ExpiredAt reports whether the token is past its expiry at the given instant.
func (t *PasswordResetToken) ExpiredAt(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
