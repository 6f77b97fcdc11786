package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required argument is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPublicKey is returned when a public key lacks PEM framing or
	// cannot be parsed. It wraps ErrInvalidInput.
	ErrInvalidPublicKey = fmt.Errorf("%w: invalid public key format", ErrInvalidInput)

	// ErrInvalidPrivateKey is returned when a private key cannot be parsed for
	// the requested algorithm.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)
