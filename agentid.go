package agentid

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"agentid/internal/crypto"
	"agentid/internal/domain"
	"agentid/internal/services/identity"
	"agentid/internal/services/signature"
)

type (
	KeyType     = domain.KeyType
	KeyPair     = domain.KeyPair
	KeyProvider = crypto.KeyProvider

	// HashInput is text or bytes; both hash the same underlying bytes.
	HashInput = crypto.HashInput
)

const (
	KeyTypeRSA        = domain.KeyTypeRSA
	KeyTypeEd25519    = domain.KeyTypeEd25519
	KeyTypeCurve25519 = domain.KeyTypeCurve25519
)

var (
	ErrUnsupportedKeyType = domain.ErrUnsupportedKeyType
	ErrInvalidInput       = crypto.ErrInvalidInput
	ErrInvalidPublicKey   = crypto.ErrInvalidPublicKey
	ErrSigningFailed      = signature.ErrSigningFailed
)

type services struct {
	logger    zerolog.Logger
	identity  *identity.Service
	signature *signature.Service
}

var defaults atomic.Pointer[services]

func init() { SetLogger(zerolog.Nop()) }

// SetLogger replaces the logger used by the package-level functions and
// returns the one it replaced. It is safe to call while other calls run.
// The package logs nothing until SetLogger is called.
func SetLogger(logger zerolog.Logger) (previous zerolog.Logger) {
	old := defaults.Swap(&services{
		logger:    logger,
		identity:  identity.New(logger),
		signature: signature.New(logger),
	})
	if old == nil {
		return zerolog.Nop()
	}
	return old.logger
}

func svc() *services { return defaults.Load() }

// ParseKeyType maps a name such as "ed25519" or "x25519" onto a KeyType.
func ParseKeyType(name string) (KeyType, error) { return domain.ParseKeyType(name) }

// NewKeyProvider returns the generator for keyType without generating anything.
func NewKeyProvider(keyType KeyType) (KeyProvider, error) {
	return crypto.NewKeyProvider(keyType)
}

// GenerateKeyPair generates a fresh key pair of the given type.
func GenerateKeyPair(keyType KeyType) (KeyPair, error) {
	return svc().identity.GenerateKeyPair(keyType)
}

// GenerateWireGuardKeyPair returns a base64 Curve25519 key pair.
//
// Deprecated: use GenerateKeyPair(KeyTypeCurve25519).
func GenerateWireGuardKeyPair() (privateKey, publicKey string, err error) {
	return svc().identity.GenerateWireGuardKeyPair() //nolint:staticcheck
}

// DerivePublicKey returns the SPKI PEM public key for a PEM private key.
// It reports false, and never panics, when the input cannot be parsed.
// Curve25519 keys are handled by DeriveWireGuardPublicKey.
func DerivePublicKey(privateKey string) (string, bool) {
	return svc().identity.DerivePublicKey(privateKey)
}

// DeriveWireGuardPublicKey returns the base64 public key for a base64
// Curve25519 private key.
func DeriveWireGuardPublicKey(privateKey string) (string, bool) {
	return svc().identity.DeriveWireGuardPublicKey(privateKey)
}

// GetFingerprint returns the SHA-256 hex of the public key text.
func GetFingerprint(publicKey string) string {
	return svc().identity.Fingerprint(publicKey).String()
}

// GetShortID returns the first 16 hex characters of GetFingerprint.
func GetShortID(publicKey string) string {
	return svc().identity.ShortID(publicKey).String()
}

// HashToAgentID returns the agent id for a public key. It equals GetShortID.
func HashToAgentID(publicKey string) string {
	return svc().identity.AgentID(publicKey).String()
}

// OpenSSHFingerprint returns the "SHA256:..." form ssh-keygen prints for an
// RSA or Ed25519 PEM public key.
func OpenSSHFingerprint(publicKey string) (string, error) {
	return svc().identity.OpenSSHFingerprint(publicKey)
}

// Sha256Hex returns the lowercase hex SHA-256 of in.
func Sha256Hex[T HashInput](in T) string { return crypto.Sha256Hex(in) }

// Sha256Base64 returns the standard base64 SHA-256 of in.
func Sha256Base64[T HashInput](in T) string { return crypto.Sha256Base64(in) }

// SignMessage signs message with an RSA or Ed25519 PEM private key and
// returns the base64 signature.
func SignMessage(privateKey, message string) (string, error) {
	return svc().signature.SignMessage(privateKey, message)
}

// VerifySignature reports whether signature is valid for message under
// publicKey. An error is returned only for empty arguments or a public key
// without PEM framing; every other failure reports false.
func VerifySignature(publicKey, message, signature string) (bool, error) {
	return svc().signature.VerifySignature(publicKey, message, signature)
}
