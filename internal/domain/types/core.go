package types

// Fingerprint is the full SHA-256 hex digest of a public key's text.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ShortID is the first 16 hex characters of a public key's fingerprint.
type ShortID string

// String returns the string form of the short identifier.
func (id ShortID) String() string { return string(id) }

// AgentID identifies an agent by its public key. It is derived exactly like ShortID.
type AgentID string

// String returns the string form of the agent identifier.
func (id AgentID) String() string { return string(id) }
