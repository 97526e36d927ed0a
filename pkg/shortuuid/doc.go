// Package shortuuid converts 128-bit UUIDs to compact, URL-friendly
// strings over an arbitrary alphabet, and back.
//
// A UUID is treated as a single 128-bit integer and re-expressed in base N,
// where N is the alphabet size. The default alphabet is the 57-symbol-safe
// base58 set (digits 1-9, uppercase without I/O, lowercase without l),
// which encodes any UUID in 22 characters.
//
// # Usage
//
// Generate a random short UUID and decode it back:
//
//	s := shortuuid.New()
//	u, err := s.Decode()
//
// Encode an existing UUID with a custom alphabet:
//
//	a, err := shortuuid.NewAlphabet("abcdef1234567890")
//	s := shortuuid.EncodeWithAlphabet(id, a, a.EncodedLength())
//
// # Compatibility
//
// The digit order is least-significant first: the character at index 0 of
// an encoded string is the units digit. Fixed-length output pads with the
// alphabet's first character at the tail (the most-significant end) and
// truncates high-order digits when the requested length is too short to
// hold the full value. These semantics are preserved exactly for
// compatibility with previously issued codes; do not "fix" them.
//
// The alphabet is not recoverable from an encoded string. Decoding with a
// different alphabet than the one used to encode silently yields a
// different UUID whenever the characters happen to overlap.
//
// All operations are pure and safe for concurrent use.
package shortuuid
