package search

import (
	"unicode"
	"unicode/utf8"
)

// Annotated is text with an optional highlighted span [Start, End) in bytes.
type Annotated struct {
	Text  string
	Start int
	End   int
}

// Matched reports whether a span is highlighted.
func (a Annotated) Matched() bool {
	return a.End > a.Start
}

// Parts splits the text around the highlighted span.
func (a Annotated) Parts() (before, match, after string) {
	if !a.Matched() {
		return a.Text, "", ""
	}
	return a.Text[:a.Start], a.Text[a.Start:a.End], a.Text[a.End:]
}

// Wrap renders the text with the match enclosed in open and close.
func (a Annotated) Wrap(open, close string) string {
	if !a.Matched() {
		return a.Text
	}
	before, match, after := a.Parts()
	return before + open + match + close + after
}

// Highlight marks the first case-insensitive occurrence of term in text.
// An empty term or no occurrence yields an unmarked result.
func Highlight(text, term string) Annotated {
	out := Annotated{Text: text}
	if term == "" || text == "" {
		return out
	}

	needle := fold(term)
	// byte offset of every rune in text, plus the end offset
	var offsets []int
	var hay []rune
	for i, r := range text {
		offsets = append(offsets, i)
		hay = append(hay, unicode.ToLower(r))
	}
	offsets = append(offsets, len(text))

	for i := 0; i+len(needle) <= len(hay); i++ {
		if runesEqual(hay[i:i+len(needle)], needle) {
			out.Start = offsets[i]
			out.End = offsets[i+len(needle)]
			return out
		}
	}
	return out
}

// Contains reports whether text contains term, ignoring case.
func Contains(text, term string) bool {
	return Highlight(text, term).Matched()
}

func fold(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
