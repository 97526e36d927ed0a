package shortuuid

import (
	"fmt"
	"math"
	"math/big"

	"github.com/google/uuid"
)

// CalculateLength returns the minimum number of base-alphabetSize digits
// needed to represent any 128-bit value: ceil(log(256)/log(size) * 16).
// Reference values: 16 -> 32, 36 -> 25, 58 -> 22, 62 -> 22.
func CalculateLength(alphabetSize int) int {
	factor := math.Log(256) / math.Log(float64(alphabetSize))
	return int(math.Ceil(factor * 16))
}

// Encode encodes u with the default alphabet at its lossless length.
func Encode(u uuid.UUID) ShortUUID {
	return EncodeWithAlphabet(u, defaultAlpha, defaultAlpha.EncodedLength())
}

// EncodeWithAlphabet encodes u in base a.Len() at exactly the given
// length. A negative length means the alphabet's lossless length.
//
// Digits are emitted least-significant first. When the natural encoding
// is shorter than length, the alphabet's first character is appended
// until the length is reached; when it is longer, high-order digits are
// dropped. Truncation is lossy: the result decodes to a different UUID.
func EncodeWithAlphabet(u uuid.UUID, a Alphabet, length int) ShortUUID {
	a = a.orDefault()
	if length < 0 {
		length = a.EncodedLength()
	}
	return ShortUUID{str: encodeBig(new(big.Int).SetBytes(u[:]), a, length), alphabet: a}
}

// Decode decodes a default-alphabet code back to its UUID.
func Decode(code string) (uuid.UUID, error) {
	return DecodeWithAlphabet(code, defaultAlpha)
}

// DecodeWithAlphabet decodes code, interpreting each character as a digit
// in base a.Len(), least-significant first, and returns the 128-bit value
// as a UUID. The empty string decodes to the all-zero UUID.
//
// It returns an error wrapping ErrInvalidChar when a character is not in
// the alphabet, and ErrValueOutOfRange when the value does not fit in
// 128 bits.
func DecodeWithAlphabet(code string, a Alphabet) (uuid.UUID, error) {
	a = a.orDefault()
	sum, err := decodeBig(code, a)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode %q: %w", code, err)
	}
	if sum.BitLen() > 128 {
		return uuid.Nil, fmt.Errorf("decode %q: %w", code, ErrValueOutOfRange)
	}
	var buf [16]byte
	sum.FillBytes(buf[:])
	return uuid.UUID(buf), nil
}

// IsValid reports whether every character of code is in the alphabet,
// i.e. whether DecodeWithAlphabet can succeed apart from range checks.
func IsValid(code string, a Alphabet) bool {
	a = a.orDefault()
	for _, r := range code {
		if _, ok := a.index(r); !ok {
			return false
		}
	}
	return true
}

// encodeBig renders n in base a.Len(), least-significant digit first,
// padded or truncated to exactly length runes.
func encodeBig(n *big.Int, a Alphabet, length int) string {
	base := big.NewInt(int64(a.Len()))
	num := new(big.Int).Set(n)
	rem := new(big.Int)

	out := make([]rune, 0, length)
	for num.Sign() > 0 {
		num.DivMod(num, base, rem)
		out = append(out, a.runes[rem.Int64()])
	}
	for len(out) < length {
		out = append(out, a.runes[0])
	}
	if len(out) > length {
		out = out[:length]
	}
	return string(out)
}

// decodeBig accumulates sum(digit_i * base^i) over the runes of code.
// Intermediate values can exceed 128 bits for long inputs, so everything
// stays in big.Int until the caller range-checks the result.
func decodeBig(code string, a Alphabet) (*big.Int, error) {
	base := big.NewInt(int64(a.Len()))
	sum := new(big.Int)
	pow := big.NewInt(1)
	term := new(big.Int)

	for i, r := range []rune(code) {
		d, ok := a.index(r)
		if !ok {
			return nil, fmt.Errorf("position %d: %q: %w", i, r, ErrInvalidChar)
		}
		term.SetInt64(int64(d))
		sum.Add(sum, term.Mul(term, pow))
		pow.Mul(pow, base)
	}
	return sum, nil
}
