package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentid/internal/domain/types"
)

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		in   string
		want types.KeyType
	}{
		{"rsa", types.KeyTypeRSA},
		{"RSA", types.KeyTypeRSA},
		{" ed25519 ", types.KeyTypeEd25519},
		{"wireguard", types.KeyTypeCurve25519},
		{"curve25519", types.KeyTypeCurve25519},
		{"X25519", types.KeyTypeCurve25519},
	}
	for _, tt := range tests {
		got, err := types.ParseKeyType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := types.ParseKeyType("dsa")
	assert.ErrorIs(t, err, types.ErrUnsupportedKeyType)
}

func TestKeyType_Capabilities(t *testing.T) {
	assert.True(t, types.KeyTypeRSA.CanSign())
	assert.True(t, types.KeyTypeEd25519.CanSign())
	assert.False(t, types.KeyTypeCurve25519.CanSign())

	assert.True(t, types.KeyTypeCurve25519.Valid())
	assert.False(t, types.KeyType("ecdsa").Valid())
	assert.Equal(t, "wireguard", types.KeyTypeCurve25519.String())
}

func TestKeyPair_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(types.KeyPair{PrivateKey: "a", PublicKey: "b", Type: types.KeyTypeEd25519})
	require.NoError(t, err)
	assert.JSONEq(t, `{"private_key":"a","public_key":"b","type":"ed25519"}`, string(b))
}
