package farm

import (
	"crypto/ed25519"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadKeypair reads an ed25519 keypair from the JSON byte-array format the
// standard wallet tooling writes (64 bytes: seed followed by public key).
func LoadKeypair(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keypair file %s", path)
	}

	var keyBytes []byte
	if err := json.Unmarshal(raw, &keyBytes); err != nil {
		return nil, errors.Wrapf(err, "invalid keypair file %s", path)
	}

	if len(keyBytes) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("invalid keypair length: %d (expected %d)", len(keyBytes), ed25519.PrivateKeySize)
	}

	return ed25519.PrivateKey(keyBytes), nil
}
