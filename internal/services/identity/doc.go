// Package identity generates agent key pairs and derives identifiers from them.
//
// It selects the key provider for a requested key type, re-derives public
// keys from private keys, and computes the fingerprint, short id and agent id
// of a public key. Derivation never fails loudly: malformed input yields
// ("", false) so callers can probe unknown strings.
package identity
