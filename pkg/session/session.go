// Package session holds the session encryption key in memory for the
// lifetime of the process. Nothing here is ever written to disk or logged.
package session

import (
	"errors"
	"sync"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
)

// ErrReauthenticate means the session key is missing and the user must log in again.
var ErrReauthenticate = errors.New("authentication key not found, please log in again")

// KeyEncKey is the slot holding the session encryption key.
const KeyEncKey = "encKey"

// Store is an ephemeral key-value store.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Set stores value under key.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok && v != ""
}

// Remove deletes key.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Clear drops every value, e.g. on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}

// SetEncKey stores the session encryption key.
func (s *Store) SetEncKey(key remote.EncKey) {
	s.Set(KeyEncKey, string(key))
}

// RequireEncKey returns the session key or ErrReauthenticate.
func (s *Store) RequireEncKey() (remote.EncKey, error) {
	v, ok := s.Get(KeyEncKey)
	if !ok {
		return "", ErrReauthenticate
	}
	return remote.EncKey(v), nil
}
