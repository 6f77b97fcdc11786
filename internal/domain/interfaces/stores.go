package interfaces

import domaintypes "agentid/internal/domain/types"

// KeyPairStore writes generated key pairs out for the CLI and reads them back.
type KeyPairStore interface {
	SaveKeyPair(name string, kp domaintypes.KeyPair) (privatePath, publicPath string, err error)
	LoadKeyPair(name string) (domaintypes.KeyPair, error)
}
