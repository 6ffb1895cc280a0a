package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// Nested keys use a double underscore: BLUEBIRD_PHYSICS__GRAVITY=700.
const EnvPrefix = "BLUEBIRD_"

// Load builds a Config by layering defaults, one config file, and env vars.
// File search order: customPath -> ~/.bluebird/config.yaml -> ./configs/bluebird.yaml.
// A missing customPath is an error; the other locations are optional.
func Load(customPath string) (Config, error) {
	cfg := Defaults()

	k := koanf.New(".")

	path, err := resolvePath(customPath)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("config: cannot read environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("config: cannot decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() Config {
	var cfg Config
	if err := yamlv3.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal renders a config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// resolvePath picks the config file to load, or "" if none exists.
func resolvePath(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "bluebird.yaml")}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bluebird", filename)
}
