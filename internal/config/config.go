// Package config loads the user's gitbox configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Theme       `yaml:"theme"`
}

// Theme holds the board's display colors.
type Theme struct {
	Selected    string `yaml:"selected"`     // border color of the selected column/card
	Dragging    string `yaml:"dragging"`     // border color while something is picked up
	DropTarget  string `yaml:"drop_target"`  // highlight of the candidate drop zone
	WIPExceeded string `yaml:"wip_exceeded"` // WIP counter color once the limit is passed
	Muted       string `yaml:"muted"`
}

// DefaultTheme returns the default colors.
func DefaultTheme() Theme {
	return Theme{
		Selected:    "#58a6ff",
		Dragging:    "#d29922",
		DropTarget:  "#3fb950",
		WIPExceeded: "#f85149",
		Muted:       "#8b949e",
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gitbox", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "gitbox", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	def := DefaultTheme()
	if c.Theme.Selected == "" {
		c.Theme.Selected = def.Selected
	}
	if c.Theme.Dragging == "" {
		c.Theme.Dragging = def.Dragging
	}
	if c.Theme.DropTarget == "" {
		c.Theme.DropTarget = def.DropTarget
	}
	if c.Theme.WIPExceeded == "" {
		c.Theme.WIPExceeded = def.WIPExceeded
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = def.Muted
	}
}
