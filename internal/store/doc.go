// Package store writes generated key pairs to disk for the CLI and reads
// keys back.
//
// Files are written through a temp file and an atomic rename. Private keys
// get mode 0600 and public keys 0644.
package store
