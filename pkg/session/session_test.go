package session

import (
	"errors"
	"testing"
)

func TestRequireEncKey(t *testing.T) {
	s := New()
	if _, err := s.RequireEncKey(); !errors.Is(err, ErrReauthenticate) {
		t.Fatalf("Expected ErrReauthenticate, got %v", err)
	}

	s.SetEncKey("abc")
	key, err := s.RequireEncKey()
	if err != nil || key != "abc" {
		t.Fatalf("Expected key abc, got %q (%v)", key, err)
	}

	s.Clear()
	if _, err := s.RequireEncKey(); !errors.Is(err, ErrReauthenticate) {
		t.Errorf("Expected ErrReauthenticate after clear, got %v", err)
	}

	s.Set(KeyEncKey, "")
	if _, err := s.RequireEncKey(); !errors.Is(err, ErrReauthenticate) {
		t.Errorf("Expected empty key to count as missing, got %v", err)
	}
}
