package interfaces

import domaintypes "agentid/internal/domain/types"

// IdentityService generates key pairs and derives identifiers from them.
type IdentityService interface {
	GenerateKeyPair(keyType domaintypes.KeyType) (domaintypes.KeyPair, error)
	DerivePublicKey(privateKey string) (string, bool)
	Fingerprint(publicKey string) domaintypes.Fingerprint
	ShortID(publicKey string) domaintypes.ShortID
	AgentID(publicKey string) domaintypes.AgentID
}

// SignatureService signs messages and verifies signatures over them.
type SignatureService interface {
	SignMessage(privateKey, message string) (string, error)
	VerifySignature(publicKey, message, signature string) (bool, error)
}
