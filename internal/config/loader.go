package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads configuration for a variant.
// Search order: customPath -> ~/.catcher/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hard-coded default.
// Files ending in .toml are decoded as TOML. Keys missing from a file keep
// their default values.
func Load(variant, customPath string) (CatcherConfig, error) {
	if customPath != "" {
		cfg := DefaultFor(variant)
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	name := variant + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		cfg := DefaultFor(variant)
		if err := decodeFile(path, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultFor(variant)
	if data := GetDefaultYAML(variant); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(variant), nil
		}
	}
	return cfg, nil
}

// LoadValidated loads a variant, applies the preset and validates the result.
func LoadValidated(variant, customPath string, preset DifficultyPreset) (CatcherConfig, error) {
	cfg, err := Load(variant, customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *CatcherConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}
