package hint

import "errors"

// Alphabet errors
var (
	ErrAlphabetTooSmall = errors.New("alphabet needs at least two distinct characters")
)

// DefaultAlphabetString is the home-row default used when no alphabet is
// configured.
const DefaultAlphabetString = "asdfghjkl"

// Alphabet is an ordered, deduplicated set of single characters used as
// hint label digits. Order matters: earlier characters are assigned to
// more important targets.
type Alphabet struct {
	runes []rune
}

// NewAlphabet builds an alphabet from s, deduplicating characters while
// preserving first-occurrence order. At least two distinct characters
// are required for prefix-free codes of any size.
func NewAlphabet(s string) (Alphabet, error) {
	seen := make(map[rune]bool)
	var runes []rune
	for _, r := range s {
		if seen[r] {
			continue
		}
		seen[r] = true
		runes = append(runes, r)
	}
	if len(runes) < 2 {
		return Alphabet{}, ErrAlphabetTooSmall
	}
	return Alphabet{runes: runes}, nil
}

// MustAlphabet builds an alphabet and panics on error. Use only for
// known-valid strings in initialization code.
func MustAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic("invalid hint alphabet: " + s + ": " + err.Error())
	}
	return a
}

// DefaultAlphabet returns the home-row alphabet.
func DefaultAlphabet() Alphabet {
	return MustAlphabet(DefaultAlphabetString)
}

// Len returns the number of characters.
func (a Alphabet) Len() int {
	return len(a.runes)
}

// Rune returns the character at position i.
func (a Alphabet) Rune(i int) rune {
	return a.runes[i]
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, ar := range a.runes {
		if ar == r {
			return true
		}
	}
	return false
}

// String returns the alphabet characters in order.
func (a Alphabet) String() string {
	return string(a.runes)
}
