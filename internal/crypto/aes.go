package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// testVectorID is the associated data of the master password test vector
const testVectorID = "vault:test-vector"

// gcmCipher implements FieldCipher using AES-256-GCM with the record ID as
// associated data, so a field copied onto another record fails to open
type gcmCipher struct{}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrBadKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext; the nonce is prepended to the output
func (c *gcmCipher) Seal(plaintext string, key []byte, recordID string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, []byte(plaintext), []byte(recordID)), nil
}

// Open reverses Seal
func (c *gcmCipher) Open(sealed []byte, key []byte, recordID string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(sealed) < gcm.NonceSize() {
		return "", errors.New("ciphertext too short")
	}
	nonce, body := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, body, []byte(recordID))
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// GenerateSalt generates a cryptographically secure random salt
func (c *gcmCipher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	_, err := io.ReadFull(rand.Reader, salt)
	return salt, err
}

// VerifyKey checks key against the stored test vector
func (c *gcmCipher) VerifyKey(key []byte, testVector []byte) bool {
	_, err := c.Open(testVector, key, testVectorID)
	return err == nil
}

// NewTestVector seals a known string for later VerifyKey calls
func NewTestVector(c FieldCipher, key []byte) ([]byte, error) {
	return c.Seal("This is a test string to verify the master password.", key, testVectorID)
}
