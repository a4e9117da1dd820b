package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked by Load.
const LocalPath = "configs/breakout.yaml"

// Load loads the breakout configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default.
// Only an explicit customPath reports read and parse errors; the implicit
// locations are skipped when missing or unreadable.
func Load(customPath string) (Game, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Game{}, err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single YAML config file.
func LoadFile(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Game{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result, so a
// file only needs to name the fields it changes.
func Parse(data []byte) (Game, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Game) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}
