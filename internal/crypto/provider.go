package crypto

import (
	"fmt"

	"agentid/internal/domain/types"
)

// KeyProvider generates key pairs for one key variant.
//
// The set of variants is closed; a KeyProvider can only be obtained from
// NewKeyProvider, which rejects unknown types.
type KeyProvider struct {
	keyType types.KeyType
}

// NewKeyProvider returns the provider for keyType, or an error wrapping
// types.ErrUnsupportedKeyType. No key material is generated.
func NewKeyProvider(keyType types.KeyType) (KeyProvider, error) {
	if !keyType.Valid() {
		return KeyProvider{}, fmt.Errorf("%w: %q", types.ErrUnsupportedKeyType, keyType)
	}
	return KeyProvider{keyType: keyType}, nil
}

// Type returns the variant this provider generates.
func (p KeyProvider) Type() types.KeyType { return p.keyType }

// GenerateKeyPair generates a fresh key pair in the variant's encoding.
func (p KeyProvider) GenerateKeyPair() (types.KeyPair, error) {
	switch p.keyType {
	case types.KeyTypeRSA:
		return GenerateRSA()
	case types.KeyTypeEd25519:
		return GenerateEd25519()
	case types.KeyTypeCurve25519:
		return GenerateCurve25519()
	default:
		return types.KeyPair{}, fmt.Errorf("%w: %q", types.ErrUnsupportedKeyType, p.keyType)
	}
}

// GenerateKeyPair selects the provider for keyType and generates a pair with it.
func GenerateKeyPair(keyType types.KeyType) (types.KeyPair, error) {
	p, err := NewKeyProvider(keyType)
	if err != nil {
		return types.KeyPair{}, err
	}
	return p.GenerateKeyPair()
}
