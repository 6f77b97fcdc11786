package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"agentid/internal/domain/types"
	"agentid/internal/util/memzero"
)

// GenerateEd25519 returns a new Ed25519 key pair as PKCS#8 / SPKI PEM.
func GenerateEd25519() (types.KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return types.KeyPair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	defer memzero.Zero(priv)

	privPEM, err := MarshalPrivateKeyPEM(priv)
	if err != nil {
		return types.KeyPair{}, err
	}
	pubPEM, err := MarshalPublicKeyPEM(pub)
	if err != nil {
		return types.KeyPair{}, err
	}
	return types.KeyPair{PrivateKey: privPEM, PublicKey: pubPEM, Type: types.KeyTypeEd25519}, nil
}

// ParseEd25519PrivateKey parses a PKCS#8 PEM Ed25519 private key.
func ParseEd25519PrivateKey(s string) (ed25519.PrivateKey, error) {
	signer, err := ParsePrivateKeyPEM(s)
	if err != nil {
		return nil, err
	}
	priv, ok := signer.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 key", ErrInvalidPrivateKey)
	}
	return priv, nil
}

// ParseEd25519PublicKey parses an SPKI PEM Ed25519 public key.
func ParseEd25519PublicKey(s string) (ed25519.PublicKey, error) {
	obj, err := ParsePublicKeyPEM(s)
	if err != nil {
		return nil, err
	}
	pub, ok := obj.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 key", ErrInvalidPublicKey)
	}
	return pub, nil
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}
