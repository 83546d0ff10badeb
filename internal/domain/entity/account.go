// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single credentialed
// identity. It carries both the login credential state and the security
// counters the lockout policy operates on.
type Account struct {
	ID                  uuid.UUID  // The unique identifier for the account.
	Email               string     // Login identifier; stored lowercase, unique across the system.
	Name                string     // Display name.
	PasswordHash        string     // bcrypt hash of the account password.
	Role                Role       // Privilege tier: USER, ADMIN or SUPER_ADMIN.
	Active              bool       // Disabled accounts reject authentication.
	EmailVerified       bool       // Signup accounts stay unverified until the OTP flow completes.
	FailedLoginAttempts int        // Consecutive failed logins; reset on success or when a lock is imposed.
	LockedUntil         *time.Time // Non-nil and in the future means authentication is rejected.
	CreatedAt           time.Time  // Timestamp of when this account was created.
	UpdatedAt           time.Time  // Timestamp of the last modification to this account.
}

// Identity is the minimal authenticated projection of an Account, the only
// account data handed back to callers after a successful login.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// IdentityOf returns the authenticated identity view of the account.
func IdentityOf(account *Account) *Identity {
	return &Identity{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	}
}
