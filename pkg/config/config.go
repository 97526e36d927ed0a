package config

import (
	"fmt"

	"github.com/getmockd/shortuuid/pkg/shortuuid"
)

// Value sources recorded in Config.Sources.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// Builtin alphabet profile names.
const (
	ProfileBase58 = "base58"
	ProfileBase62 = "base62"
	ProfileBase36 = "base36"
	ProfileHex    = "hex"
)

// builtinAlphabets maps profile names to their character sets.
var builtinAlphabets = map[string]string{
	ProfileBase58: shortuuid.DefaultAlphabet,
	ProfileBase62: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
	ProfileBase36: "0123456789abcdefghijklmnopqrstuvwxyz",
	ProfileHex:    "0123456789abcdef",
}

// Config holds CLI configuration.
type Config struct {
	// DefaultAlphabet is the profile name or literal character set used
	// when --alphabet is not given. Defaults to base58.
	DefaultAlphabet string `yaml:"defaultAlphabet,omitempty"`

	// Alphabets maps user-defined profile names to character sets.
	Alphabets map[string]string `yaml:"alphabets,omitempty"`

	// Output is the default output format: "text" or "json".
	Output string `yaml:"output,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`

	// Sources records where each value came from (default, file, env).
	Sources map[string]string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultAlphabet: ProfileBase58,
		Output:          "text",
		Sources: map[string]string{
			"defaultAlphabet": SourceDefault,
			"output":          SourceDefault,
		},
	}
}

// BuiltinProfiles returns the built-in profile names in a stable order.
func BuiltinProfiles() []string {
	return []string{ProfileBase58, ProfileBase62, ProfileBase36, ProfileHex}
}

// LookupProfile returns the character set for a built-in profile name.
func LookupProfile(name string) (string, bool) {
	chars, ok := builtinAlphabets[name]
	return chars, ok
}

// ResolveAlphabet resolves a profile name or literal character set to an
// Alphabet. User-defined profiles shadow built-ins. An empty name means
// the configured default. Literal sets still go through alphabet
// validation, so a bad spelling surfaces as an alphabet error, not a
// silent base change.
func (c *Config) ResolveAlphabet(name string) (shortuuid.Alphabet, error) {
	if name == "" {
		name = c.DefaultAlphabet
	}
	if name == "" {
		return shortuuid.Default(), nil
	}
	if chars, ok := c.Alphabets[name]; ok {
		a, err := shortuuid.NewAlphabet(chars)
		if err != nil {
			return shortuuid.Alphabet{}, fmt.Errorf("profile %q: %w", name, err)
		}
		return a, nil
	}
	if chars, ok := builtinAlphabets[name]; ok {
		return shortuuid.MustAlphabet(chars), nil
	}
	return shortuuid.NewAlphabet(name)
}
