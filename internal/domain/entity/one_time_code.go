package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodePurpose scopes a one-time code to the flow that issued it.
type CodePurpose string

const (
	// PurposeEmailVerification marks codes issued to verify a signup email.
	PurposeEmailVerification CodePurpose = "email_verification"
	// PurposePasswordReset marks codes issued for the reset-by-code flow.
	PurposePasswordReset CodePurpose = "password_reset"
)

// String returns the string representation of the CodePurpose.
func (p CodePurpose) String() string {
	return string(p)
}

// MaxCodeAttempts is the number of wrong guesses after which a code becomes
// permanently unusable, even before it expires.
const MaxCodeAttempts = 5

// OneTimeCode is a short-lived 6-digit numeric code bound to one email and one
// purpose. Only one live code may exist per (purpose, email) pair; issuing a
// new one supersedes any previous code.
type OneTimeCode struct {
	ID        uuid.UUID   // The unique identifier for this code record.
	Email     string      // The email the code was delivered to, lowercase.
	Purpose   CodePurpose // The flow this code authorizes.
	Code      string      // The 6-digit numeric secret.
	ExpiresAt time.Time   // Codes are rejected after this instant, evaluated lazily.
	Attempts  int         // Wrong guesses so far; MaxCodeAttempts exhausts the code.
	Verified  bool        // A verified code must never be accepted again.
	CreatedAt time.Time   // Timestamp of when this code was issued.
}

// Exhausted reports whether the attempt budget is spent.
func (c *OneTimeCode) Exhausted() bool {
	return c.Attempts >= MaxCodeAttempts
}

// ExpiredAt reports whether the code is past its expiry at the given instant.
func (c *OneTimeCode) ExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
