// Package agentid creates and checks the cryptographic identities of
// agents.
//
// It generates RSA, Ed25519 and Curve25519 (WireGuard) key pairs, derives
// public keys from private keys, computes SHA-256 fingerprints and the
// short ids built from them, and signs and verifies messages with RSA and
// Ed25519 keys.
//
// RSA and Ed25519 keys travel as PEM text (PKCS#8 private, SPKI public).
// Curve25519 keys are raw 32-byte values in standard base64. Fingerprints
// hash the exact key text, so the same key must always be exchanged with
// the same bytes, trailing newline included.
//
// The package is silent by default. SetLogger routes its logs to a zerolog
// logger: rejected inputs at Debug, generation and signing failures at Error.
// Key material is never logged.
package agentid
