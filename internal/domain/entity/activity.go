package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction tags a security-relevant end-user event.
type ActivityAction string

const (
	ActivityLoginSuccess           ActivityAction = "LOGIN_SUCCESS"
	ActivityLoginFailed            ActivityAction = "LOGIN_FAILED"
	ActivityOtpSent                ActivityAction = "OTP_SENT"
	ActivityEmailVerified          ActivityAction = "EMAIL_VERIFIED"
	ActivityPasswordChanged        ActivityAction = "PASSWORD_CHANGED"
	ActivityPasswordResetRequested ActivityAction = "PASSWORD_RESET_REQUESTED"
	ActivityPasswordResetSuccess   ActivityAction = "PASSWORD_RESET_SUCCESS"
	ActivityEmailChanged           ActivityAction = "EMAIL_CHANGED"
	ActivityAccountDeleted         ActivityAction = "ACCOUNT_DELETED"
)

// String returns the string representation of the ActivityAction.
func (a ActivityAction) String() string {
	return string(a)
}

// ActivityEntry is an immutable record of a security-relevant end-user event.
// Entries are append-only and written only by the activity recorder.
type ActivityEntry struct {
	ID        uuid.UUID      // The unique identifier for this entry.
	Email     string         // The subject account's email, lowercase.
	Action    ActivityAction // What happened.
	IPAddress string         // Originating client IP, best effort.
	CreatedAt time.Time      // When the event happened.
}
