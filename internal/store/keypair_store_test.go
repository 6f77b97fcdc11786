package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentid/internal/crypto"
	"agentid/internal/domain"
	"agentid/internal/store"
)

func TestKeyPair_SaveLoad_RoundTrip(t *testing.T) {
	for _, kt := range []domain.KeyType{domain.KeyTypeEd25519, domain.KeyTypeCurve25519} {
		t.Run(kt.String(), func(t *testing.T) {
			home := t.TempDir()
			var s domain.KeyPairStore = store.NewKeyPairFileStore(home)

			kp, err := crypto.GenerateKeyPair(kt)
			require.NoError(t, err)

			privPath, pubPath, err := s.SaveKeyPair("agent", kp)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(home, "agent.key"), privPath)
			assert.Equal(t, filepath.Join(home, "agent.pub"), pubPath)

			got, err := s.LoadKeyPair("agent")
			require.NoError(t, err)
			assert.Equal(t, kp, got)
		})
	}
}

func TestKeyPair_FileModes(t *testing.T) {
	home := t.TempDir()
	s := store.NewKeyPairFileStore(home)

	kp, err := crypto.GenerateKeyPair(domain.KeyTypeEd25519)
	require.NoError(t, err)

	privPath, pubPath, err := s.SaveKeyPair("agent", kp)
	require.NoError(t, err)

	fi, err := os.Stat(privPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	fi, err = os.Stat(pubPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestKeyPair_CreatesDirectory(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "keys")
	s := store.NewKeyPairFileStore(home)

	kp, err := crypto.GenerateKeyPair(domain.KeyTypeCurve25519)
	require.NoError(t, err)

	_, _, err = s.SaveKeyPair("wg0", kp)
	require.NoError(t, err)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must not be left behind")
}

func TestKeyPair_Overwrite(t *testing.T) {
	s := store.NewKeyPairFileStore(t.TempDir())

	first, err := crypto.GenerateKeyPair(domain.KeyTypeEd25519)
	require.NoError(t, err)
	second, err := crypto.GenerateKeyPair(domain.KeyTypeEd25519)
	require.NoError(t, err)

	_, _, err = s.SaveKeyPair("agent", first)
	require.NoError(t, err)
	_, _, err = s.SaveKeyPair("agent", second)
	require.NoError(t, err)

	got, err := s.LoadKeyPair("agent")
	require.NoError(t, err)
	assert.Equal(t, second.PublicKey, got.PublicKey)
}

func TestKeyPair_Load_Missing(t *testing.T) {
	s := store.NewKeyPairFileStore(t.TempDir())

	_, err := s.LoadKeyPair("nobody")
	assert.ErrorIs(t, err, store.ErrKeyPairNotFound)
}

func TestKeyPair_InvalidName(t *testing.T) {
	s := store.NewKeyPairFileStore(t.TempDir())

	for _, name := range []string{"", ".", "..", "../escape", "a/b"} {
		_, _, err := s.SaveKeyPair(name, domain.KeyPair{})
		assert.ErrorIs(t, err, store.ErrInvalidName, "save %q", name)

		_, err = s.LoadKeyPair(name)
		assert.ErrorIs(t, err, store.ErrInvalidName, "load %q", name)
	}
}

func TestKeyPair_Load_UnknownFormat(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "junk.key"), []byte("junk\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, "junk.pub"), []byte("junk\n"), 0o644))

	_, err := store.NewKeyPairFileStore(home).LoadKeyPair("junk")
	assert.ErrorIs(t, err, domain.ErrUnsupportedKeyType)
}

func TestReadKeyFile_Stdin(t *testing.T) {
	key, err := store.ReadKeyFile("-", strings.NewReader("  c2hvcnQ=\n"))
	require.NoError(t, err)
	assert.Equal(t, "c2hvcnQ=", key)
}

func TestReadKeyFile_PEMUnchanged(t *testing.T) {
	kp, err := crypto.GenerateKeyPair(domain.KeyTypeEd25519)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.pem")
	require.NoError(t, os.WriteFile(path, []byte(kp.PrivateKey), 0o600))

	got, err := store.ReadKeyFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey, got)
}

func TestReadKeyFile_Missing(t *testing.T) {
	_, err := store.ReadKeyFile(filepath.Join(t.TempDir(), "absent"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInferKeyType(t *testing.T) {
	for _, kt := range []domain.KeyType{domain.KeyTypeRSA, domain.KeyTypeEd25519, domain.KeyTypeCurve25519} {
		kp, err := crypto.GenerateKeyPair(kt)
		require.NoError(t, err)

		got, err := store.InferKeyType(kp.PublicKey)
		require.NoError(t, err)
		assert.Equal(t, kt, got)
	}
}
