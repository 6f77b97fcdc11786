package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"agentid/internal/domain/types"
	"agentid/internal/util/memzero"
)

// X25519KeyLen is the encoded length of a base64 Curve25519 key.
const X25519KeyLen = 44

// GenerateCurve25519 returns a new Curve25519 box key pair, each key as raw
// base64 with no framing.
func GenerateCurve25519() (types.KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return types.KeyPair{}, fmt.Errorf("generate curve25519 key: %w", err)
	}
	defer memzero.Zero(priv[:])

	return types.KeyPair{
		PrivateKey: B64(priv[:]),
		PublicKey:  B64(pub[:]),
		Type:       types.KeyTypeCurve25519,
	}, nil
}

// ParseX25519Private decodes a base64 Curve25519 private key.
func ParseX25519Private(s string) (priv types.X25519Private, err error) {
	b, err := decodeX25519(s)
	if err != nil {
		return priv, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	defer memzero.Zero(b)
	copy(priv[:], b)
	return priv, nil
}

// ParseX25519Public decodes a base64 Curve25519 public key.
func ParseX25519Public(s string) (pub types.X25519Public, err error) {
	b, err := decodeX25519(s)
	if err != nil {
		return pub, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	copy(pub[:], b)
	return pub, nil
}

// DeriveX25519Public computes the public key for priv. The scalar is clamped
// per RFC 7748 by the X25519 function itself.
func DeriveX25519Public(priv types.X25519Private) (pub types.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

func decodeX25519(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != curve25519.ScalarSize {
		return nil, fmt.Errorf("want %d bytes, got %d", curve25519.ScalarSize, len(b))
	}
	return b, nil
}
