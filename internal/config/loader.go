package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadWheel loads the wheel configuration.
// Search order: customPath -> ~/.wheel/configs/wheel.yaml -> ./configs/wheel.yaml -> embedded default
func LoadWheel(customPath string) (WheelConfig, error) {
	cfg, _, err := LoadWheelSource(customPath)
	return cfg, err
}

// LoadWheelSource is LoadWheel that also reports which source was used.
// Files are merged over the built-in defaults, so they may set only the
// keys they care about.
func LoadWheelSource(customPath string) (WheelConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readWheel(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wheel.yaml"); userCfgPath != "" {
		if cfg, err := readWheel(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readWheel(filepath.Join("configs", "wheel.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultWheelConfig()
	if err := yaml.Unmarshal(defaultWheelYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultWheelConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func readWheel(path string) (WheelConfig, error) {
	cfg := DefaultWheelConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveWheel writes cfg as YAML, creating parent directories.
func SaveWheel(path string, cfg WheelConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserDir returns ~/.wheel, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wheel")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
