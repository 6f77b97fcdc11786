package crypto

import (
	"crypto/ed25519"
	"strings"

	"agentid/internal/domain/types"
)

// Length limits used when a PEM blob cannot be parsed. Ed25519 PEM keys are
// around 120 characters while RSA-2048 keys run to 450 (public) and 1700
// (private).
//
// TODO: replace with real key-size boundaries once there are test vectors for
// truncated and re-wrapped keys; a long malformed Ed25519 blob is currently
// misclassified as RSA.
const (
	ed25519PrivatePEMMaxLen = 400
	ed25519PublicPEMMaxLen  = 300
)

// assumeRSA is the classification for anything that is not recognisably Ed25519.
const assumeRSA = types.KeyTypeRSA

// DetectKeyType classifies a PEM private or public key as RSA or Ed25519.
//
// The key is parsed first and its algorithm read from the key object. When
// parsing fails the classification falls back to header and length checks, so
// DetectKeyType always returns a concrete type.
func DetectKeyType(key string) types.KeyType {
	if obj, err := parseKeyObject(key); err == nil {
		return classifyKeyObject(obj)
	}
	return guessKeyType(key)
}

func classifyKeyObject(obj any) types.KeyType {
	switch obj.(type) {
	case ed25519.PrivateKey, ed25519.PublicKey:
		return types.KeyTypeEd25519
	default:
		return assumeRSA
	}
}

func guessKeyType(key string) types.KeyType {
	switch {
	case strings.Contains(key, "BEGIN PRIVATE KEY") && len(key) < ed25519PrivatePEMMaxLen:
		return types.KeyTypeEd25519
	case strings.Contains(key, "BEGIN PUBLIC KEY") && len(key) < ed25519PublicPEMMaxLen:
		return types.KeyTypeEd25519
	default:
		return assumeRSA
	}
}
