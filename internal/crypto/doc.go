// Package crypto exposes the primitives behind agent identities.
//
// Contents
//
//   - SHA-256 hashing to hex and base64, and the 16-character agent id
//     (Sha256Hex, Sha256Base64, HashToAgentID)
//   - Key generation for the three key variants behind a closed KeyProvider
//     (NewKeyProvider, GenerateKeyPair)
//   - Key type detection for PEM blobs (DetectKeyType)
//   - PEM parsing and marshalling for PKCS#8, PKCS#1 and SubjectPublicKeyInfo
//   - RSA PKCS#1 v1.5 / SHA-256 and Ed25519 sign and verify
//   - Curve25519 (WireGuard) public-key derivation
//   - Fingerprints, short ids and OpenSSH fingerprints
//
// # Notes
//
// RSA and Ed25519 keys travel as PEM text; Curve25519 keys travel as raw
// 32-byte values in standard base64. Raw secret bytes are wiped once they
// have been encoded.
package crypto
