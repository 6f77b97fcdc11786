package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// agentIDLen is the number of hex characters kept for short and agent ids.
const agentIDLen = 16

// HashInput is anything hashable as raw bytes.
type HashInput interface {
	~string | ~[]byte
}

// Sha256Hex returns the lowercase hex SHA-256 digest of in.
func Sha256Hex[T HashInput](in T) string {
	sum := sha256.Sum256([]byte(in))
	return hex.EncodeToString(sum[:])
}

// Sha256Base64 returns the padded standard base64 SHA-256 digest of in.
func Sha256Base64[T HashInput](in T) string {
	sum := sha256.Sum256([]byte(in))
	return B64(sum[:])
}

// HashToAgentID returns the first 16 hex characters of the public key's digest.
func HashToAgentID(publicKey string) string {
	return Sha256Hex(publicKey)[:agentIDLen]
}

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
