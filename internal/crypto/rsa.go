package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"agentid/internal/domain/types"
)

// RSAKeyBits is the modulus size of generated RSA keys.
const RSAKeyBits = 2048

// GenerateRSA returns a new 2048-bit RSA key pair as PKCS#8 / SPKI PEM.
func GenerateRSA() (types.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, RSAKeyBits)
	if err != nil {
		return types.KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}
	privPEM, err := MarshalPrivateKeyPEM(priv)
	if err != nil {
		return types.KeyPair{}, err
	}
	pubPEM, err := MarshalPublicKeyPEM(&priv.PublicKey)
	if err != nil {
		return types.KeyPair{}, err
	}
	return types.KeyPair{PrivateKey: privPEM, PublicKey: pubPEM, Type: types.KeyTypeRSA}, nil
}

// ParseRSAPrivateKey parses a PEM RSA private key (PKCS#8 or PKCS#1).
func ParseRSAPrivateKey(s string) (*rsa.PrivateKey, error) {
	signer, err := ParsePrivateKeyPEM(s)
	if err != nil {
		return nil, err
	}
	priv, ok := signer.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}
	return priv, nil
}

// ParseRSAPublicKey parses a PEM RSA public key (SPKI or PKCS#1).
func ParseRSAPublicKey(s string) (*rsa.PublicKey, error) {
	obj, err := ParsePublicKeyPEM(s)
	if err != nil {
		return nil, err
	}
	pub, ok := obj.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return pub, nil
}

// SignRSA signs the SHA-256 digest of msg with PKCS#1 v1.5.
func SignRSA(priv *rsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	return rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
}

// VerifyRSA checks a PKCS#1 v1.5 signature over the SHA-256 digest of msg.
func VerifyRSA(pub *rsa.PublicKey, msg, sig []byte) bool {
	digest := sha256.Sum256(msg)
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig) == nil
}
