// Package signature signs messages and verifies signatures over them.
//
// The algorithm is picked per call from the key itself: Ed25519 keys sign
// the raw message, RSA keys sign its SHA-256 digest with PKCS#1 v1.5.
// Signatures travel as standard base64.
//
// Missing arguments and unframed public keys are errors. A signature that is
// malformed or does not match is a false result, never an error.
package signature
