package auth

import (
	"testing"

	domainerrors "aegis/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Sup3r$trong")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r$trong", hash)

	assert.True(t, hasher.Check("Sup3r$trong", hash))
	assert.False(t, hasher.Check("Sup3r$trongX", hash))
	assert.False(t, hasher.Check("Sup3r$trong", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashRejectsWeakPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("short")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Empty(t, hash)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher()

	testCases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Sup3r$trong", wantErr: false},
		{name: "too short", password: "Ab1$xyz", wantErr: true},
		{name: "no lowercase", password: "ABCDEF1$", wantErr: true},
		{name: "no uppercase", password: "abcdef1$", wantErr: true},
		{name: "no number", password: "Abcdefg$", wantErr: true},
		{name: "no special char", password: "Abcdefg1", wantErr: true},
		{name: "contains password", password: "MyPassword1$", wantErr: true},
		{name: "contains admin", password: "SuperAdmin1$", wantErr: true},
		{name: "contains qwerty", password: "Qwerty!2345", wantErr: true},
		{name: "contains 123456", password: "Abc$123456", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := hasher.ValidateStrength(testCase.password)

			if testCase.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBcryptHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MaxCost + 1)

	concrete, ok := hasher.(*bcryptHasher)

	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, concrete.cost)
}
