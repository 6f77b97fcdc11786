package identity

import (
	"github.com/rs/zerolog"

	"agentid/internal/crypto"
	"agentid/internal/domain"
)

// Service generates key pairs and computes identifiers for public keys.
type Service struct {
	logger zerolog.Logger
}

// New returns an identity service logging through logger.
func New(logger zerolog.Logger) *Service {
	return &Service{logger: logger.With().Str("module", "identity").Logger()}
}

// GenerateKeyPair generates a key pair of the given type. Unknown types fail
// with domain.ErrUnsupportedKeyType before any key material is created.
func (s *Service) GenerateKeyPair(keyType domain.KeyType) (domain.KeyPair, error) {
	provider, err := crypto.NewKeyProvider(keyType)
	if err != nil {
		s.logger.Error().Err(err).Msg("generate key pair")
		return domain.KeyPair{}, err
	}
	kp, err := provider.GenerateKeyPair()
	if err != nil {
		s.logger.Error().Err(err).Stringer("key_type", keyType).Msg("generate key pair")
		return domain.KeyPair{}, err
	}
	s.logger.Trace().
		Stringer("key_type", keyType).
		Str("short_id", crypto.ShortID(kp.PublicKey)).
		Msg("key pair generated")
	return kp, nil
}

// GenerateWireGuardKeyPair returns a Curve25519 key pair as base64 strings.
//
// Deprecated: use GenerateKeyPair(domain.KeyTypeCurve25519).
func (s *Service) GenerateWireGuardKeyPair() (privateKey, publicKey string, err error) {
	kp, err := s.GenerateKeyPair(domain.KeyTypeCurve25519)
	if err != nil {
		return "", "", err
	}
	return kp.PrivateKey, kp.PublicKey, nil
}

// DerivePublicKey returns the SubjectPublicKeyInfo PEM for a PEM private key.
// It reports false when the input is not PEM framed or cannot be parsed.
func (s *Service) DerivePublicKey(privateKey string) (string, bool) {
	if !crypto.HasPEMFraming(privateKey) {
		return "", false
	}
	priv, err := crypto.ParsePrivateKeyPEM(privateKey)
	if err != nil {
		s.logger.Debug().Err(err).Msg("derive public key")
		return "", false
	}
	pub, err := crypto.MarshalPublicKeyPEM(priv.Public())
	if err != nil {
		s.logger.Debug().Err(err).Msg("derive public key")
		return "", false
	}
	return pub, true
}

// DeriveWireGuardPublicKey returns the base64 Curve25519 public key for a base64
// private key. It reports false for anything that is not a 32-byte key.
func (s *Service) DeriveWireGuardPublicKey(privateKey string) (string, bool) {
	priv, err := crypto.ParseX25519Private(privateKey)
	if err != nil {
		s.logger.Debug().Err(err).Msg("derive wireguard public key")
		return "", false
	}
	pub, err := crypto.DeriveX25519Public(priv)
	if err != nil {
		s.logger.Debug().Err(err).Msg("derive wireguard public key")
		return "", false
	}
	return crypto.B64(pub.Slice()), true
}

// Fingerprint returns the 64-character hex fingerprint of publicKey.
func (s *Service) Fingerprint(publicKey string) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(publicKey))
}

// ShortID returns the 16-character short id of publicKey.
func (s *Service) ShortID(publicKey string) domain.ShortID {
	return domain.ShortID(crypto.ShortID(publicKey))
}

// AgentID returns the 16-character agent id of publicKey.
func (s *Service) AgentID(publicKey string) domain.AgentID {
	return domain.AgentID(crypto.HashToAgentID(publicKey))
}

// OpenSSHFingerprint returns the ssh-keygen style fingerprint of a PEM public key.
func (s *Service) OpenSSHFingerprint(publicKey string) (string, error) {
	return crypto.OpenSSHFingerprint(publicKey)
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
