// Package service defines domain-level service interfaces whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher defines the operations for one-way password hashing.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool

	// ValidateStrength returns a non-nil error when the plaintext password
	// does not meet the configured strength policy.
	ValidateStrength(password string) error
}
