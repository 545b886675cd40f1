package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// UserConfigFile is the config path relative to the XDG config directories.
const UserConfigFile = "tui-mines/mines.yaml"

// LoadMines loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-mines/mines.yaml -> ./configs/mines.yaml -> embedded default.
// Files are applied over the defaults, so they only need the keys they change.
func LoadMines(customPath string) (MinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMinesConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if path, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile("configs/mines.yaml"); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultMinesConfig()
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

func loadFile(path string) (MinesConfig, error) {
	cfg := DefaultMinesConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}
