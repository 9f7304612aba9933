// Package strength scores candidate passwords.
package strength

import (
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// Label is a strength tier.
type Label string

const (
	Weak   Label = "weak"
	Medium Label = "medium"
	Strong Label = "strong"
)

// Color returns the display color of the tier.
func (l Label) Color() string {
	switch l {
	case Strong:
		return "#48c774"
	case Medium:
		return "#ffdd57"
	}
	return "#ff6b6b"
}

// Text returns the user-facing caption of the tier.
func (l Label) Text() string {
	switch l {
	case Strong:
		return "Strong Password"
	case Medium:
		return "Medium Password"
	}
	return "Weak Password"
}

// Result is the score of a candidate.
type Result struct {
	Score int
	Label Label
}

// Score rates candidate from 0 to 100.
func Score(candidate string) Result {
	if candidate == "" {
		return Result{Score: 0, Label: Weak}
	}

	runes := []rune(candidate)
	score := 0
	switch {
	case len(runes) >= 8:
		score += 25
	case len(runes) >= 6:
		score += 10
	}

	var lower, upper, digit, other bool
	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	if lower {
		score += 10
	}
	if upper {
		score += 15
	}
	if digit {
		score += 15
	}
	if other {
		score += 20
	}
	score += min(15, len(distinct)*2)
	score = max(0, min(100, score))

	return Result{Score: score, Label: labelFor(score)}
}

func labelFor(score int) Label {
	switch {
	case score < 40:
		return Weak
	case score < 70:
		return Medium
	}
	return Strong
}

// Entropy estimates the bits of entropy in candidate. It is informational
// only and does not affect Score.
func Entropy(candidate string) float64 {
	return passwordvalidator.GetEntropy(candidate)
}
