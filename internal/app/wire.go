package app

import (
	"github.com/rs/zerolog"

	"agentid/internal/domain"
	"agentid/internal/services/identity"
	"agentid/internal/services/signature"
	"agentid/internal/store"
)

// Wire bundles the services and stores used by the CLI.
type Wire struct {
	Identity  *identity.Service
	Signature domain.SignatureService
	Keys      domain.KeyPairStore
	Logger    zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger zerolog.Logger) *Wire {
	return &Wire{
		Identity:  identity.New(logger),
		Signature: signature.New(logger),
		Keys:      store.NewKeyPairFileStore(cfg.OutDir),
		Logger:    logger,
	}
}
