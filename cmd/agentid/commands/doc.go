// Package commands defines the agentid CLI.
//
// Commands
//
//   - keygen       Generate an RSA, Ed25519 or WireGuard key pair
//   - derive       Print the public key for a private key
//   - fingerprint  Print the fingerprint, short id and agent id of a public key
//   - sign         Sign a message with a private key
//   - verify       Check a signature against a public key
//   - hash         Print the SHA-256 of a string
//
// # Implementation
//
// The root command loads configuration through viper and builds the app
// dependency graph before any subcommand runs. Results are written to the
// command's output stream and logs go to stderr.
package commands
