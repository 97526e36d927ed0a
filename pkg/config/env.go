package config

import "os"

// Environment variable names.
const (
	EnvAlphabet = "SHORTUUID_ALPHABET"
	EnvConfig   = "SHORTUUID_CONFIG"
	EnvOutput   = "SHORTUUID_OUTPUT"
	EnvVerbose  = "SHORTUUID_VERBOSE"
)

// applyEnv overlays environment variables onto cfg. Only variables that
// are set are applied.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAlphabet); v != "" {
		cfg.DefaultAlphabet = v
		cfg.Sources["defaultAlphabet"] = SourceEnv
	}

	if v := os.Getenv(EnvOutput); v == "text" || v == "json" {
		cfg.Output = v
		cfg.Sources["output"] = SourceEnv
	}

	switch os.Getenv(EnvVerbose) {
	case "1", "true", "yes":
		cfg.Verbose = true
		cfg.Sources["verbose"] = SourceEnv
	}
}

// ConfigPathFromEnv returns the config file path forced via
// SHORTUUID_CONFIG, or "".
func ConfigPathFromEnv() string {
	return os.Getenv(EnvConfig)
}
