package crypto

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// PEM block types understood by the parsers.
const (
	pemPrivateKey    = "PRIVATE KEY"
	pemPublicKey     = "PUBLIC KEY"
	pemRSAPrivateKey = "RSA PRIVATE KEY"
	pemRSAPublicKey  = "RSA PUBLIC KEY"
)

var errNoPEMBlock = errors.New("no PEM block found")

// HasPEMFraming reports whether s carries both a PEM begin and end delimiter.
func HasPEMFraming(s string) bool {
	return strings.Contains(s, "-----BEGIN") && strings.Contains(s, "-----END")
}

// MarshalPrivateKeyPEM encodes key as a PKCS#8 "PRIVATE KEY" block.
func MarshalPrivateKeyPEM(key any) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", fmt.Errorf("marshal private key: %w", err)
	}
	return encodePEM(pemPrivateKey, der), nil
}

// MarshalPublicKeyPEM encodes key as a SubjectPublicKeyInfo "PUBLIC KEY" block.
func MarshalPublicKeyPEM(key any) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return encodePEM(pemPublicKey, der), nil
}

// ParsePrivateKeyPEM parses a PKCS#8 or PKCS#1 private key.
func ParsePrivateKeyPEM(s string) (crypto.Signer, error) {
	obj, err := parseKeyObject(s)
	if err != nil {
		return nil, err
	}
	signer, ok := obj.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a signing private key", ErrInvalidPrivateKey, obj)
	}
	return signer, nil
}

// ParsePublicKeyPEM parses a public key. A private key PEM is accepted too;
// its public half is returned.
func ParsePublicKeyPEM(s string) (crypto.PublicKey, error) {
	obj, err := parseKeyObject(s)
	if err != nil {
		return nil, err
	}
	if signer, ok := obj.(crypto.Signer); ok {
		return signer.Public(), nil
	}
	return obj, nil
}

// parseKeyObject turns the first PEM block of s into a key object.
func parseKeyObject(s string) (any, error) {
	block, _ := pem.Decode([]byte(s))
	if block == nil {
		return nil, errNoPEMBlock
	}
	var (
		obj any
		err error
	)
	switch block.Type {
	case pemPrivateKey:
		obj, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case pemPublicKey:
		obj, err = x509.ParsePKIXPublicKey(block.Bytes)
	case pemRSAPrivateKey:
		obj, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case pemRSAPublicKey:
		obj, err = x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		return nil, fmt.Errorf("unsupported PEM block %q", block.Type)
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func encodePEM(blockType string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}
