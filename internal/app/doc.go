// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (flags, AGENTID_* env vars, an optional
// config file, defaults), builds the zerolog logger and constructs the
// identity and signature services plus the key file store.
package app
