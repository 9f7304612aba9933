package generator

import (
	"errors"
	"testing"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/strength"
)

func TestGenerate(t *testing.T) {
	g := New(nil)
	for i := 0; i < 10000; i++ {
		password, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(password) < MinLength || len(password) > MaxLength {
			t.Fatalf("Generated %q with length %d", password, len(password))
		}
		if !MeetsRequirements(password) {
			t.Fatalf("Generated %q is missing a character class", password)
		}
		if got := strength.Score(password).Label; got != strength.Strong {
			t.Fatalf("Generated %q scored %s", password, got)
		}
	}
}

func TestGenerateCoversLengths(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		password, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		seen[len(password)] = true
	}
	for n := MinLength; n <= MaxLength; n++ {
		if !seen[n] {
			t.Errorf("Length %d never generated", n)
		}
	}
}

func TestShuffleUniform(t *testing.T) {
	g := New(nil)
	counts := map[string]int{}
	const trials = 60000
	for i := 0; i < trials; i++ {
		b := []byte("abc")
		if err := g.shuffle(b); err != nil {
			t.Fatalf("shuffle() error = %v", err)
		}
		counts[string(b)]++
	}
	if len(counts) != 6 {
		t.Fatalf("Expected all 6 permutations, got %v", counts)
	}
	for perm, n := range counts {
		if n < trials/6-600 || n > trials/6+600 {
			t.Errorf("Permutation %s appeared %d times, expected about %d", perm, n, trials/6)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateSourceError(t *testing.T) {
	if _, err := New(failingReader{}).Generate(); err == nil {
		t.Error("Expected error from failing random source")
	}
}

func TestMeetsRequirements(t *testing.T) {
	if MeetsRequirements("abcABC123") {
		t.Error("Expected missing symbol to fail")
	}
	if !MeetsRequirements("aA1!") {
		t.Error("Expected class-complete password to pass")
	}
}
