package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedKeyType is returned when a key type is not one of the known variants.
var ErrUnsupportedKeyType = errors.New("unsupported key type")

// KeyType tags a key pair with the algorithm that produced it.
type KeyType string

const (
	// KeyTypeRSA is a 2048-bit RSA pair, PKCS#8 / SPKI PEM encoded.
	KeyTypeRSA KeyType = "rsa"
	// KeyTypeEd25519 is an Ed25519 pair, PKCS#8 / SPKI PEM encoded.
	KeyTypeEd25519 KeyType = "ed25519"
	// KeyTypeCurve25519 is a WireGuard-style Curve25519 box pair, raw base64 encoded.
	KeyTypeCurve25519 KeyType = "wireguard"
)

// String returns the string form of the key type.
func (t KeyType) String() string { return string(t) }

// Valid reports whether t is one of the known variants.
func (t KeyType) Valid() bool {
	switch t {
	case KeyTypeRSA, KeyTypeEd25519, KeyTypeCurve25519:
		return true
	default:
		return false
	}
}

// CanSign reports whether keys of this type can produce signatures.
// Curve25519 keys are Diffie-Hellman only.
func (t KeyType) CanSign() bool {
	return t == KeyTypeRSA || t == KeyTypeEd25519
}

// ParseKeyType maps a user-supplied name onto a KeyType.
// "curve25519" and "x25519" are accepted as aliases of "wireguard".
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rsa":
		return KeyTypeRSA, nil
	case "ed25519":
		return KeyTypeEd25519, nil
	case "wireguard", "curve25519", "x25519":
		return KeyTypeCurve25519, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKeyType, s)
	}
}

// KeyPair is an encoded private/public key pair.
//
// RSA and Ed25519 keys are PEM text (PKCS#8 private, SubjectPublicKeyInfo public).
// Curve25519 keys are 32 raw bytes in standard base64 with no framing.
type KeyPair struct {
	PrivateKey string  `json:"private_key"`
	PublicKey  string  `json:"public_key"`
	Type       KeyType `json:"type"`
}

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }
