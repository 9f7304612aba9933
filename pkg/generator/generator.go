package generator

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/strength"
)

// Character classes
const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers   = "0123456789"
	symbols   = "!@#$%&*_+-=.?"

	alphabet = lowercase + uppercase + numbers + symbols
)

// Length bounds of generated passwords, inclusive.
const (
	MinLength = 8
	MaxLength = 16
)

// Generator draws passwords from a random source.
type Generator struct {
	rand io.Reader
}

// New returns a generator reading from src. A nil src uses crypto/rand.
func New(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{rand: src}
}

// Generate creates a password with one character of every class using crypto/rand.
func Generate() (string, error) {
	return New(nil).Generate()
}

// Generate returns a password of MinLength to MaxLength characters containing
// at least one lowercase letter, uppercase letter, digit and symbol.
func (g *Generator) Generate() (string, error) {
	n, err := g.randomInt(MaxLength - MinLength + 1)
	if err != nil {
		return "", err
	}
	length := MinLength + n

	result := make([]byte, 0, length)
	for _, class := range []string{lowercase, uppercase, numbers, symbols} {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}
	for len(result) < length {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}
	return string(result), nil
}

// GenerateScored returns a new password together with its strength.
func (g *Generator) GenerateScored() (string, strength.Result, error) {
	password, err := g.Generate()
	if err != nil {
		return "", strength.Result{}, err
	}
	return password, strength.Score(password), nil
}

func (g *Generator) pick(set string) (byte, error) {
	idx, err := g.randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffle is a Fisher-Yates permutation.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.randomInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randomInt generates a uniform random integer between 0 and max-1
func (g *Generator) randomInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}

	n, err := rand.Int(g.rand, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}

// MeetsRequirements reports whether password contains every character class.
func MeetsRequirements(password string) bool {
	var hasLower, hasUpper, hasNumber, hasSymbol bool
	for _, c := range password {
		switch {
		case containsRune(lowercase, c):
			hasLower = true
		case containsRune(uppercase, c):
			hasUpper = true
		case containsRune(numbers, c):
			hasNumber = true
		case containsRune(symbols, c):
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasNumber && hasSymbol
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
