package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"agentid/internal/crypto"
	"agentid/internal/domain"
)

const (
	privateKeyExt = ".key"
	publicKeyExt  = ".pub"
)

var (
	// ErrKeyPairNotFound is returned when either half of a named pair is missing.
	ErrKeyPairNotFound = errors.New("key pair not found")

	// ErrInvalidName is returned for names that are empty or contain a path.
	ErrInvalidName = errors.New("invalid key pair name")
)

// KeyPairFileStore keeps key pairs as <name>.key (0600) and <name>.pub (0644).
type KeyPairFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyPairFileStore returns a KeyPairFileStore rooted at dir.
func NewKeyPairFileStore(dir string) *KeyPairFileStore {
	return &KeyPairFileStore{dir: dir}
}

// SaveKeyPair writes both halves of kp and returns their paths.
func (s *KeyPairFileStore) SaveKeyPair(name string, kp domain.KeyPair) (privatePath, publicPath string, err error) {
	if err := validateName(name); err != nil {
		return "", "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", "", err
	}
	privatePath = filepath.Join(s.dir, name+privateKeyExt)
	publicPath = filepath.Join(s.dir, name+publicKeyExt)

	if err := writeFile(privatePath, []byte(withNewline(kp.PrivateKey)), 0o600); err != nil {
		return "", "", fmt.Errorf("write private key: %w", err)
	}
	if err := writeFile(publicPath, []byte(withNewline(kp.PublicKey)), 0o644); err != nil {
		return "", "", fmt.Errorf("write public key: %w", err)
	}
	return privatePath, publicPath, nil
}

// LoadKeyPair reads a pair written by SaveKeyPair. The key type is inferred
// from the public key.
func (s *KeyPairFileStore) LoadKeyPair(name string) (domain.KeyPair, error) {
	if err := validateName(name); err != nil {
		return domain.KeyPair{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	priv, err := readFile(filepath.Join(s.dir, name+privateKeyExt))
	if err != nil {
		return domain.KeyPair{}, err
	}
	pub, err := readFile(filepath.Join(s.dir, name+publicKeyExt))
	if err != nil {
		return domain.KeyPair{}, err
	}
	if priv == nil || pub == nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %q", ErrKeyPairNotFound, name)
	}

	kp := domain.KeyPair{PrivateKey: keyText(priv), PublicKey: keyText(pub)}
	if kp.Type, err = InferKeyType(kp.PublicKey); err != nil {
		return domain.KeyPair{}, err
	}
	return kp, nil
}

// ReadKeyFile reads a key from path, or from stdin when path is "-".
// PEM text is returned unchanged; anything else has surrounding whitespace
// removed.
func ReadKeyFile(path string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	return keyText(b), nil
}

// InferKeyType classifies a stored public key: PEM keys by the detector,
// bare 32-byte base64 keys as Curve25519.
func InferKeyType(publicKey string) (domain.KeyType, error) {
	if crypto.HasPEMFraming(publicKey) {
		return crypto.DetectKeyType(publicKey), nil
	}
	if _, err := crypto.ParseX25519Public(publicKey); err == nil {
		return domain.KeyTypeCurve25519, nil
	}
	return "", fmt.Errorf("%w: cannot infer type of stored key", domain.ErrUnsupportedKeyType)
}

func keyText(b []byte) string {
	s := string(b)
	if crypto.HasPEMFraming(s) {
		return s
	}
	return strings.TrimSpace(s)
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Compile-time assertion that KeyPairFileStore implements domain.KeyPairStore.
var _ domain.KeyPairStore = (*KeyPairFileStore)(nil)
