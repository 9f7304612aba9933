package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// KeySize is the session key length in bytes (AES-256).
const KeySize = 32

// ErrBadKey is returned for key material of the wrong shape.
var ErrBadKey = errors.New("invalid session key")

// FieldCipher seals and opens individual credential fields
type FieldCipher interface {
	// DeriveKey derives a session key from the master password and salt
	DeriveKey(password string, salt []byte) ([]byte, error)

	// GenerateSalt generates a cryptographically secure random salt
	GenerateSalt() ([]byte, error)

	// Seal encrypts plaintext, binding it to the record it belongs to
	Seal(plaintext string, key []byte, recordID string) ([]byte, error)

	// Open decrypts a field sealed for recordID
	Open(sealed []byte, key []byte, recordID string) (string, error)

	// VerifyKey reports whether key opens the stored test vector
	VerifyKey(key []byte, testVector []byte) bool
}

// NewFieldCipher creates the default AES-GCM field cipher
func NewFieldCipher() FieldCipher {
	return &gcmCipher{}
}

// EncodeKey renders a session key as opaque hex text.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}

// DecodeKey parses a session key produced by EncodeKey.
func DecodeKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrBadKey, KeySize, len(key))
	}
	return key, nil
}
