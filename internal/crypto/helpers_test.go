package crypto_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"agentid/internal/crypto"
	"agentid/internal/domain/types"
)

const testMessage = "Synet is rising."

var (
	fixtureOnce sync.Once
	fixtures    map[types.KeyType]types.KeyPair
	fixtureErr  error
)

// keyPair returns a key pair generated once per test binary.
func keyPair(t *testing.T, kt types.KeyType) types.KeyPair {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtures = make(map[types.KeyType]types.KeyPair)
		for _, k := range []types.KeyType{types.KeyTypeRSA, types.KeyTypeEd25519} {
			kp, err := crypto.GenerateKeyPair(k)
			if err != nil {
				fixtureErr = err
				return
			}
			fixtures[k] = kp
		}
	})
	require.NoError(t, fixtureErr)
	return fixtures[kt]
}

// paddedPEM returns an unparseable blob of exactly n bytes starting with a
// PEM header of the given block type.
func paddedPEM(blockType string, n int) string {
	header := "-----BEGIN " + blockType + "-----\n"
	return header + strings.Repeat("A", n-len(header))
}
