// Package cli implements the shortuuid command-line interface.
//
// Commands:
//
//	shortuuid new        generate random short UUIDs
//	shortuuid encode     encode canonical UUIDs
//	shortuuid decode     decode short codes back to UUIDs
//	shortuuid length     show the lossless length for an alphabet
//	shortuuid alphabets  list alphabet profiles
//	shortuuid version    show build information
//
// The active alphabet comes from --alphabet (a profile name or a literal
// character set), SHORTUUID_ALPHABET, or the config file; see pkg/config.
// All commands support --json for machine-readable output.
package cli
