// Package config loads CLI configuration for shortuuid.
//
// Configuration is resolved in order of precedence:
//
//  1. Command-line flags
//  2. Environment variables (SHORTUUID_*)
//  3. Local config file (.shortuuidrc.yaml in the working directory)
//  4. Global config file (<user config dir>/shortuuid/config.yaml)
//  5. Built-in defaults
//
// The config file is YAML and primarily carries named alphabet profiles:
//
//	defaultAlphabet: base58
//	output: text
//	alphabets:
//	  vowelless: "0123456789bcdfghjklmnpqrstvwxz"
//
// Profile names resolve through the user's profiles first, then the
// built-ins (base58, base62, base36, hex); anything else is treated as a
// literal character set.
package config
