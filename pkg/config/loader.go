package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is the name of the per-directory config file.
	LocalConfigFileName = ".shortuuidrc.yaml"
	// GlobalConfigDir is the directory under the user config dir.
	GlobalConfigDir = "shortuuid"
	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.yaml"
)

// ConfigError reports a config file that could not be read or parsed.
// yaml.v3 messages already carry line information.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// Load builds the effective configuration. When path is non-empty, that
// file must exist and parse; otherwise the local then global file is
// used when present. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, &ConfigError{Path: path, Message: "not found"}
	}

	if path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// findConfigFile returns the first config file present, or "".
func findConfigFile() string {
	if cwd, err := os.Getwd(); err == nil {
		path := filepath.Join(cwd, LocalConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// mergeFile overlays the YAML file at path onto cfg.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Path: path, Message: err.Error()}
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return &ConfigError{Path: path, Message: typeErr.Errors[0]}
		}
		return &ConfigError{Path: path, Message: err.Error()}
	}

	if file.DefaultAlphabet != "" {
		cfg.DefaultAlphabet = file.DefaultAlphabet
		cfg.Sources["defaultAlphabet"] = SourceFile
	}
	if file.Output != "" {
		if file.Output != "text" && file.Output != "json" {
			return &ConfigError{Path: path, Message: fmt.Sprintf("invalid output format %q", file.Output)}
		}
		cfg.Output = file.Output
		cfg.Sources["output"] = SourceFile
	}
	if file.Verbose {
		cfg.Verbose = true
		cfg.Sources["verbose"] = SourceFile
	}
	for name, chars := range file.Alphabets {
		if cfg.Alphabets == nil {
			cfg.Alphabets = make(map[string]string, len(file.Alphabets))
		}
		cfg.Alphabets[name] = chars
	}
	return nil
}
