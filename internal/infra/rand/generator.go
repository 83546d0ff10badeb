// Package rand provides cryptographically sourced secrets for the
// verification and password reset flows.
package rand

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"aegis/internal/domain/service"
)

// Codes are drawn uniformly from [codeMin, codeMin+codeSpan), so the first
// digit is never zero.
const (
	codeMin  = 100000
	codeSpan = 900000
)

type generator struct{}

// New returns a CodeGenerator backed by crypto/rand.
func New() service.CodeGenerator {
	return generator{}
}

func (generator) NumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", errors.Wrap(err, "generate one-time code")
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}

func (generator) Token() (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "generate reset token")
	}

	return token.String(), nil
}
