package domain

import (
	interfaces "agentid/internal/domain/interfaces"
	types "agentid/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyType       = types.KeyType
	KeyPair       = types.KeyPair
	Fingerprint   = types.Fingerprint
	ShortID       = types.ShortID
	AgentID       = types.AgentID
	X25519Public  = types.X25519Public
	X25519Private = types.X25519Private
)

// Key type tags.
const (
	KeyTypeRSA        = types.KeyTypeRSA
	KeyTypeEd25519    = types.KeyTypeEd25519
	KeyTypeCurve25519 = types.KeyTypeCurve25519
)

// ErrUnsupportedKeyType is returned for key types outside the known variants.
var ErrUnsupportedKeyType = types.ErrUnsupportedKeyType

// ParseKeyType maps a user-supplied name onto a KeyType.
var ParseKeyType = types.ParseKeyType

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService  = interfaces.IdentityService
	SignatureService = interfaces.SignatureService
	KeyPairStore     = interfaces.KeyPairStore
)
