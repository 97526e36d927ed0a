package shortuuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet_Valid(t *testing.T) {
	a, err := NewAlphabet("abcdef1234567890")
	require.NoError(t, err)
	assert.Equal(t, 16, a.Len())
	assert.Equal(t, "abcdef1234567890", a.String())
}

func TestNewAlphabet_TooSmall(t *testing.T) {
	tests := []string{"", "a"}
	for _, chars := range tests {
		t.Run(chars, func(t *testing.T) {
			_, err := NewAlphabet(chars)
			assert.ErrorIs(t, err, ErrAlphabetTooSmall)
		})
	}
}

func TestNewAlphabet_Duplicate(t *testing.T) {
	_, err := NewAlphabet("abca")
	require.ErrorIs(t, err, ErrDuplicateRune)
	// The error should name the repeated character and both positions.
	assert.Contains(t, err.Error(), `'a'`)
	assert.Contains(t, err.Error(), "0")
	assert.Contains(t, err.Error(), "3")
}

func TestMustAlphabet_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustAlphabet("x") })
	assert.NotPanics(t, func() { MustAlphabet("xy") })
}

func TestDefault(t *testing.T) {
	a := Default()
	assert.Equal(t, 58, a.Len())
	assert.Equal(t, DefaultAlphabet, a.String())
	assert.Equal(t, 22, a.EncodedLength())
}

func TestAlphabet_RunesIsACopy(t *testing.T) {
	a := MustAlphabet("0123456789")
	runes := a.Runes()
	runes[0] = 'X'
	assert.Equal(t, "0123456789", a.String(), "mutating the returned slice must not touch the alphabet")
}

func TestAlphabet_Unicode(t *testing.T) {
	// Rune-based alphabets work beyond ASCII.
	a, err := NewAlphabet("αβγδ")
	require.NoError(t, err)
	assert.Equal(t, 4, a.Len())

	i, ok := a.index('γ')
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = a.index('ω')
	assert.False(t, ok)
}
