package shortuuid

import "errors"

// Sentinel errors returned by alphabet construction and decoding.
// Wrapped errors carry position context; match with errors.Is.
var (
	// ErrAlphabetTooSmall is returned when an alphabet has fewer than
	// MinAlphabetSize characters. Base-1 positional encoding is undefined.
	ErrAlphabetTooSmall = errors.New("alphabet must contain at least 2 characters")

	// ErrDuplicateRune is returned when an alphabet repeats a character.
	// Duplicate characters make decoding ambiguous.
	ErrDuplicateRune = errors.New("alphabet contains a duplicate character")

	// ErrInvalidChar is returned when a decoded string contains a
	// character that is not part of the alphabet.
	ErrInvalidChar = errors.New("character not in alphabet")

	// ErrValueOutOfRange is returned when a decoded value does not fit
	// in 128 bits and therefore cannot be a UUID.
	ErrValueOutOfRange = errors.New("decoded value exceeds 128 bits")
)
