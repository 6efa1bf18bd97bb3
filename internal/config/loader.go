package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "blockdoku.yaml"

// LoadBlockdoku loads and validates the configuration.
// Search order: customPath -> ~/.blockdoku/configs/blockdoku.yaml ->
// ./configs/blockdoku.yaml -> embedded default -> hardcoded default.
// Fields missing from a file keep their default values.
func LoadBlockdoku(customPath string) (BlockdokuConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source(customPath), err)
	}
	return cfg, nil
}

func load(customPath string) (BlockdokuConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlockdokuConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlockdokuYAML)
	if err != nil {
		return DefaultBlockdokuConfig(), nil
	}
	return cfg, nil
}

// parse overlays YAML on the hardcoded defaults.
func parse(data []byte) (BlockdokuConfig, error) {
	cfg := DefaultBlockdokuConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBlockdokuConfig(), err
	}
	return cfg, nil
}

func source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	return fileName
}

// userConfigPath returns ~/.blockdoku/configs/<filename>, or "" without a home.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockdoku", "configs", filename)
}

// UserConfigDir returns the directory searched for user configuration.
func UserConfigDir() string {
	if p := userConfigPath(fileName); p != "" {
		return filepath.Dir(p)
	}
	return ""
}
