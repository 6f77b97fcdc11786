package signature

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"agentid/internal/crypto"
	"agentid/internal/domain"
)

// ErrSigningFailed is returned when the key or message is rejected while signing.
var ErrSigningFailed = errors.New("failed to sign message")

// Service signs and verifies messages with PEM encoded RSA or Ed25519 keys.
type Service struct {
	logger zerolog.Logger
}

// New returns a signature service logging through logger.
func New(logger zerolog.Logger) *Service {
	return &Service{logger: logger.With().Str("module", "signature").Logger()}
}

// SignMessage signs message with a PEM private key and returns the base64
// signature. Every failure wraps ErrSigningFailed. Empty arguments also wrap
// crypto.ErrInvalidInput.
func (s *Service) SignMessage(privateKey, message string) (string, error) {
	if privateKey == "" || message == "" {
		return "", fmt.Errorf("%w: %w", ErrSigningFailed, crypto.ErrInvalidInput)
	}

	keyType := crypto.DetectKeyType(privateKey)
	sig, err := sign(keyType, privateKey, []byte(message))
	if err != nil {
		s.logger.Error().Err(err).Stringer("key_type", keyType).Msg("sign message")
		return "", fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	return crypto.B64(sig), nil
}

// VerifySignature reports whether signature is valid for message under a PEM
// public key. Empty arguments fail with crypto.ErrInvalidInput and an unframed
// key with crypto.ErrInvalidPublicKey.
func (s *Service) VerifySignature(publicKey, message, signature string) (bool, error) {
	if publicKey == "" || message == "" || signature == "" {
		return false, fmt.Errorf("verify signature: %w", crypto.ErrInvalidInput)
	}
	if !crypto.HasPEMFraming(publicKey) {
		return false, fmt.Errorf("verify signature: %w", crypto.ErrInvalidPublicKey)
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		s.logger.Debug().Err(err).Msg("decode signature")
		return false, nil
	}

	keyType := crypto.DetectKeyType(publicKey)
	ok, err := verify(keyType, publicKey, []byte(message), sig)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("key_type", keyType).Msg("verify signature")
		return false, nil
	}
	return ok, nil
}

func sign(keyType domain.KeyType, privateKey string, msg []byte) ([]byte, error) {
	switch keyType {
	case domain.KeyTypeEd25519:
		priv, err := crypto.ParseEd25519PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return crypto.SignEd25519(priv, msg), nil
	case domain.KeyTypeRSA:
		priv, err := crypto.ParseRSAPrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return crypto.SignRSA(priv, msg)
	default:
		return nil, fmt.Errorf("%w: %s cannot sign", domain.ErrUnsupportedKeyType, keyType)
	}
}

func verify(keyType domain.KeyType, publicKey string, msg, sig []byte) (bool, error) {
	switch keyType {
	case domain.KeyTypeEd25519:
		pub, err := crypto.ParseEd25519PublicKey(publicKey)
		if err != nil {
			return false, err
		}
		return crypto.VerifyEd25519(pub, msg, sig), nil
	case domain.KeyTypeRSA:
		pub, err := crypto.ParseRSAPublicKey(publicKey)
		if err != nil {
			return false, err
		}
		return crypto.VerifyRSA(pub, msg, sig), nil
	default:
		return false, fmt.Errorf("%w: %s cannot verify", domain.ErrUnsupportedKeyType, keyType)
	}
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)
