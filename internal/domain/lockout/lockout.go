// Package lockout implements the account lockout policy as pure decision
// logic. The policy only mutates the in-memory account it is handed;
// persisting the result is the caller's responsibility.
package lockout

import (
	"time"

	"aegis/internal/domain/entity"
)

const (
	// DefaultMaxFailedAttempts is the number of consecutive failed logins
	// that triggers a lock.
	DefaultMaxFailedAttempts = 5
	// DefaultLockDuration is how long a triggered lock lasts.
	DefaultLockDuration = 15 * time.Minute
)

// Policy computes lock and unlock decisions from an account's failure
// counter and timestamps.
type Policy struct {
	maxFailedAttempts int
	lockDuration      time.Duration
}

// NewPolicy creates a Policy with the given parameters. Non-positive values
// fall back to the defaults.
func NewPolicy(maxFailedAttempts int, lockDuration time.Duration) *Policy {
	if maxFailedAttempts <= 0 {
		maxFailedAttempts = DefaultMaxFailedAttempts
	}
	if lockDuration <= 0 {
		lockDuration = DefaultLockDuration
	}

	return &Policy{
		maxFailedAttempts: maxFailedAttempts,
		lockDuration:      lockDuration,
	}
}

// RecordFailure increments the account's failure counter. When the counter
// reaches the threshold the account is locked until now+lockDuration and the
// counter resets to zero, so the next window starts clean after the lock.
// Returns true if this failure imposed a lock.
func (p *Policy) RecordFailure(account *entity.Account, now time.Time) bool {
	account.FailedLoginAttempts++
	if account.FailedLoginAttempts < p.maxFailedAttempts {
		return false
	}

	lockedUntil := now.Add(p.lockDuration)
	account.LockedUntil = &lockedUntil
	account.FailedLoginAttempts = 0

	return true
}

// RecordSuccess resets the failure counter and clears any lock.
func (p *Policy) RecordSuccess(account *entity.Account) {
	account.FailedLoginAttempts = 0
	account.LockedUntil = nil
}

// IsLocked reports whether the account rejects authentication at the given
// instant. A lock whose deadline has passed no longer counts.
func (p *Policy) IsLocked(account *entity.Account, now time.Time) bool {
	return account.LockedUntil != nil && account.LockedUntil.After(now)
}
