// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/service"
)

// defaultForbiddenWords are rejected as password substrings regardless of casing.
var defaultForbiddenWords = []string{"password", "admin", "qwerty", "123456"}

const minPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	forbiddenWords []string
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{
		cost:           cost,
		forbiddenWords: defaultForbiddenWords,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password must pass the strength policy first.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidateStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), errors.WithStack(err)
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength enforces the password policy: minimum length, mixed case,
// a number, a special character, and no forbidden words.
func (h *bcryptHasher) ValidateStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "must be at least %d characters long", minPasswordLength)
	case !h.hasLowercase(password):
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one lowercase letter")
	case !h.hasUppercase(password):
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one uppercase letter")
	case !h.hasNumbers(password):
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one number")
	case !h.hasSpecialChars(password):
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one special character")
	case h.containsForbiddenWords(password, h.forbiddenWords):
		return errors.Wrap(domainerrors.ErrPasswordStrength, "contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lowered := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
