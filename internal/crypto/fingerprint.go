package crypto

import (
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Fingerprint returns the full SHA-256 hex digest of a public key's text.
func Fingerprint(publicKey string) string {
	return Sha256Hex(publicKey)
}

// ShortID returns the first 16 hex characters of Fingerprint(publicKey).
func ShortID(publicKey string) string {
	return Fingerprint(publicKey)[:agentIDLen]
}

// OpenSSHFingerprint returns the "SHA256:..." fingerprint ssh-keygen prints
// for the same key. Only RSA and Ed25519 PEM public keys are accepted.
func OpenSSHFingerprint(publicKey string) (string, error) {
	if !HasPEMFraming(publicKey) {
		return "", ErrInvalidPublicKey
	}
	pub, err := ParsePublicKeyPEM(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return ssh.FingerprintSHA256(sshPub), nil
}
