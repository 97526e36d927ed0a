package shortuuid

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLength_ReferenceBases(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{2, 128},
		{16, 32},
		{32, 26},
		{36, 25},
		{58, 22},
		{62, 22},
		{64, 22},
	}

	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.size), func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateLength(tc.size))
		})
	}
}

func TestEncode_KnownVector(t *testing.T) {
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	hexAlpha := MustAlphabet("abcdef1234567890")
	s := EncodeWithAlphabet(u, hexAlpha, hexAlpha.EncodedLength())
	assert.Equal(t, "aaae2beb11ce1fe5d8cb643921fe9dcb", s.String())

	d := Encode(u)
	assert.Equal(t, "fkn2bydeDFVvMwv43KGfF3", d.String())
}

func TestDecode_KnownVector(t *testing.T) {
	want := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	hexAlpha := MustAlphabet("abcdef1234567890")
	u, err := DecodeWithAlphabet("aaae2beb11ce1fe5d8cb643921fe9dcb", hexAlpha)
	require.NoError(t, err)
	assert.Equal(t, want, u)

	u, err = Decode("fkn2bydeDFVvMwv43KGfF3")
	require.NoError(t, err)
	assert.Equal(t, want, u)
}

func TestRoundTrip_DefaultAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		u := uuid.New()
		decoded, err := Encode(u).Decode()
		require.NoError(t, err)
		assert.Equal(t, u, decoded)
	}
}

func TestRoundTrip_CustomAlphabets(t *testing.T) {
	alphabets := []string{
		"01",
		"abcdef1234567890",
		"abcdefghijklmnopqrstuvwxyz",
		"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		"αβγδεζηθ",
	}

	for _, chars := range alphabets {
		t.Run(chars, func(t *testing.T) {
			a := MustAlphabet(chars)
			for i := 0; i < 50; i++ {
				u := uuid.New()
				s := EncodeWithAlphabet(u, a, a.EncodedLength())
				decoded, err := s.Decode()
				require.NoError(t, err)
				assert.Equal(t, u, decoded)
			}
		})
	}
}

func TestEncode_ExactLengthContract(t *testing.T) {
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	a := Default()

	for _, length := range []int{0, 1, 5, 10, 22, 40, 100} {
		s := EncodeWithAlphabet(u, a, length)
		assert.Equal(t, length, s.Len(), "length %d", length)
	}
}

func TestEncode_OutputUsesOnlyAlphabetCharacters(t *testing.T) {
	a := MustAlphabet("abcdefghijklmnopqrstuvwxyz")
	for i := 0; i < 50; i++ {
		s := EncodeWithAlphabet(uuid.New(), a, a.EncodedLength())
		for _, r := range s.String() {
			_, ok := a.index(r)
			assert.True(t, ok, "character %q not in alphabet", r)
		}
	}
}

func TestEncode_ZeroUUIDPadsWithFirstCharacter(t *testing.T) {
	s := EncodeWithAlphabet(uuid.Nil, Default(), 22)
	assert.Equal(t, strings.Repeat("1", 22), s.String())
}

func TestEncode_TailPaddingKeepsLowOrderDigitsFirst(t *testing.T) {
	// Value 1 is the units digit; padding is appended after it, at the
	// most-significant end of the LSD-first string.
	var u uuid.UUID
	u[15] = 1
	s := EncodeWithAlphabet(u, Default(), 22)
	assert.Equal(t, "2"+strings.Repeat("1", 21), s.String())
}

func TestEncode_TruncationIsDeterministicAndLossy(t *testing.T) {
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	first := EncodeWithAlphabet(u, Default(), 10)
	second := EncodeWithAlphabet(u, Default(), 10)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, "fkn2bydeDF", first.String(), "truncation keeps the least-significant digits")

	// High-order digits are gone; the decoded value differs.
	decoded, err := first.Decode()
	require.NoError(t, err)
	assert.NotEqual(t, u, decoded)
}

func TestDecode_EmptyStringIsZeroUUID(t *testing.T) {
	for _, chars := range []string{DefaultAlphabet, "abcdef1234567890", "01"} {
		u, err := DecodeWithAlphabet("", MustAlphabet(chars))
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, u)
		assert.Equal(t, "00000000-0000-0000-0000-000000000000", u.String())
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	_, err := Decode("fkn0bydeDF") // '0' is not in the base58 set
	require.ErrorIs(t, err, ErrInvalidChar)
	assert.Contains(t, err.Error(), `'0'`)
	assert.Contains(t, err.Error(), "position 3")
}

func TestDecode_ValueOutOfRange(t *testing.T) {
	// 23 top-digit base58 characters encode more than 128 bits.
	code := strings.Repeat("z", 23)
	_, err := Decode(code)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestDecode_MaxUUID(t *testing.T) {
	u, err := Decode("vLNt2Fk5kqzRJ6bQkxfVcY")
	require.NoError(t, err)
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", u.String())
}

func TestIsValid(t *testing.T) {
	a := Default()
	assert.True(t, IsValid("fkn2bydeDFVvMwv43KGfF3", a))
	assert.True(t, IsValid("", a))
	assert.False(t, IsValid("fkn0", a))
	assert.False(t, IsValid("with space", a))
}

func TestDecode_WrongAlphabetSilentlyDiffers(t *testing.T) {
	// The alphabet is not embedded in the code: decoding with another
	// alphabet that happens to contain the same characters yields a
	// different UUID, not an error.
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	lower := MustAlphabet("abcdefghijklmnop")
	shuffled := MustAlphabet("ponmlkjihgfedcba")

	code := EncodeWithAlphabet(u, lower, lower.EncodedLength()).String()
	decoded, err := DecodeWithAlphabet(code, shuffled)
	require.NoError(t, err)
	assert.NotEqual(t, u, decoded)
}
