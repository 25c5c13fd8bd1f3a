package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTigrao loads the Tigrão configuration.
// Search order: customPath -> ~/.tigrao/configs/tigrao.yaml -> ./configs/tigrao.yaml -> embedded default
// Files are decoded on top of the built-in defaults, so a partial file only
// overrides the keys it names.
func LoadTigrao(customPath string) (TigraoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTigraoConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTigrao(data)
		if err != nil {
			return DefaultTigraoConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultTigraoConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{userConfigPath("tigrao.yaml"), filepath.Join("configs", "tigrao.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTigrao(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTigrao(defaultTigraoYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultTigraoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseTigrao(data []byte) (TigraoConfig, error) {
	cfg := DefaultTigraoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tigrao", "configs", filename)
}
