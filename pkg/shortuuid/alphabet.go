package shortuuid

import (
	"fmt"
)

// DefaultAlphabet is the 58-character set used when no alphabet is given:
// digits 1-9, uppercase letters without I and O, lowercase letters without
// l. The order defines digit values and must not change; previously issued
// codes depend on it.
const DefaultAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MinAlphabetSize is the smallest usable alphabet.
const MinAlphabetSize = 2

// Alphabet is an ordered set of distinct characters defining a base-N
// digit set: the character at position i denotes digit value i.
//
// Construct with NewAlphabet or MustAlphabet. The zero value is treated as
// the default alphabet by the encode/decode entry points.
type Alphabet struct {
	runes  []rune
	lookup map[rune]int
}

// NewAlphabet builds an Alphabet from the given characters. It returns
// ErrAlphabetTooSmall for fewer than two characters and ErrDuplicateRune
// when a character repeats. The input is copied; later mutation of the
// source cannot affect codes already handed out.
func NewAlphabet(chars string) (Alphabet, error) {
	runes := []rune(chars)
	if len(runes) < MinAlphabetSize {
		return Alphabet{}, fmt.Errorf("alphabet %q: %w", chars, ErrAlphabetTooSmall)
	}
	lookup := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, ok := lookup[r]; ok {
			return Alphabet{}, fmt.Errorf("alphabet %q: %q at positions %d and %d: %w",
				chars, r, prev, i, ErrDuplicateRune)
		}
		lookup[r] = i
	}
	return Alphabet{runes: runes, lookup: lookup}, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid input.
// Intended for package-level alphabet variables.
func MustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// defaultAlpha is the shared default; Alphabet is immutable after
// construction so sharing is safe.
var defaultAlpha = MustAlphabet(DefaultAlphabet)

// Default returns the default base58 alphabet.
func Default() Alphabet {
	return defaultAlpha
}

// orDefault substitutes the default alphabet for the zero value.
func (a Alphabet) orDefault() Alphabet {
	if len(a.runes) == 0 {
		return defaultAlpha
	}
	return a
}

// Len returns the number of characters, i.e. the base.
func (a Alphabet) Len() int {
	return len(a.runes)
}

// String returns the characters in digit order.
func (a Alphabet) String() string {
	return string(a.runes)
}

// Runes returns a copy of the characters in digit order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// EncodedLength returns the smallest output length that can hold any
// 128-bit value in this alphabet's base.
func (a Alphabet) EncodedLength() int {
	return CalculateLength(a.orDefault().Len())
}

// index returns the digit value of r, or false if r is not in the
// alphabet.
func (a Alphabet) index(r rune) (int, bool) {
	i, ok := a.lookup[r]
	return i, ok
}
