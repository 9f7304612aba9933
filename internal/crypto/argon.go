package crypto

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	argonTime    = 3         // Number of iterations
	argonMemory  = 64 * 1024 // Memory in KiB (64 MB)
	argonThreads = 4
)

// DeriveKey derives the session key from the master password using Argon2id
func (c *gcmCipher) DeriveKey(password string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, errors.New("master password must not be empty")
	}
	if len(salt) == 0 {
		return nil, errors.New("salt must not be empty")
	}
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeySize), nil
}
