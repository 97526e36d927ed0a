package shortuuid

import (
	"github.com/google/uuid"
)

// ShortUUID is an immutable encoded UUID: the code string plus the
// alphabet it was encoded with. Equality is defined on the code string
// alone — two ShortUUIDs with the same characters are equal even when
// built against different alphabets. Use String() as a map key.
type ShortUUID struct {
	str      string
	alphabet Alphabet
}

// New encodes a random UUID v4 with the default alphabet.
func New() ShortUUID {
	return Encode(uuid.New())
}

// NewWithAlphabet encodes a random UUID v4 with the given alphabet at its
// lossless length.
func NewWithAlphabet(a Alphabet) ShortUUID {
	a = a.orDefault()
	return EncodeWithAlphabet(uuid.New(), a, a.EncodedLength())
}

// FromString wraps an existing default-alphabet code for later decoding.
// The string is not validated here; Decode reports invalid characters.
func FromString(code string) ShortUUID {
	return ShortUUID{str: code, alphabet: defaultAlpha}
}

// FromStringWithAlphabet wraps an existing code encoded with the given
// alphabet.
func FromStringWithAlphabet(code string, a Alphabet) ShortUUID {
	return ShortUUID{str: code, alphabet: a.orDefault()}
}

// String returns the encoded code.
func (s ShortUUID) String() string {
	return s.str
}

// Len returns the code length in runes.
func (s ShortUUID) Len() int {
	return len([]rune(s.str))
}

// Alphabet returns the alphabet this ShortUUID carries for decoding.
func (s ShortUUID) Alphabet() Alphabet {
	return s.alphabet.orDefault()
}

// Equal reports whether s and other hold the same code string. The
// alphabets are not compared.
func (s ShortUUID) Equal(other ShortUUID) bool {
	return s.str == other.str
}

// Decode converts the code back to its UUID using the carried alphabet.
func (s ShortUUID) Decode() (uuid.UUID, error) {
	return DecodeWithAlphabet(s.str, s.alphabet)
}

// MarshalText implements encoding.TextMarshaler.
func (s ShortUUID) MarshalText() ([]byte, error) {
	return []byte(s.str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The code is assumed
// to use the default alphabet; use FromStringWithAlphabet for others.
func (s *ShortUUID) UnmarshalText(text []byte) error {
	*s = FromString(string(text))
	return nil
}
