/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/palmdoc/pkg/charmap"
)

// Config represents the palmdoc configuration
type Config struct {
	Encode      Encode  `yaml:"encode"`
	Decode      Decode  `yaml:"decode"`
	Warnings    bool    `yaml:"warnings"`
	Verbose     bool    `yaml:"verbose"`
	MetricsFile string  `yaml:"metrics_file"`
	Logging     Logging `yaml:"logging"`
}

// Encode contains defaults for text to Doc conversion
type Encode struct {
	Compress    bool `yaml:"compress"`
	StripBinary bool `yaml:"strip_binary"`
	Timestamps  bool `yaml:"timestamps"`
}

// Decode contains defaults for Doc to text conversion
type Decode struct {
	CheckSignature bool `yaml:"check_signature"`
	// Fallback is a code point in any form ParseCodepoint accepts. Empty
	// means unmapped characters are skipped.
	Fallback string `yaml:"fallback"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Encode: Encode{
			Compress:    true,
			StripBinary: true,
			Timestamps:  true,
		},
		Decode: Decode{
			CheckSignature: true,
		},
		Warnings: true,
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the log level and the fallback code point
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.FallbackRune(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Logging.Level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return level, nil
}

// FallbackRune parses Decode.Fallback. An empty value gives zero.
func (c *Config) FallbackRune() (rune, error) {
	if c.Decode.Fallback == "" {
		return 0, nil
	}
	r, err := charmap.ParseCodepoint(c.Decode.Fallback)
	if err != nil {
		return 0, fmt.Errorf("invalid decode fallback: %w", err)
	}
	return r, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./palmdoc.yaml"
	}

	// For Linux/macOS, use ~/.config/palmdoc/config.yaml
	configDir := filepath.Join(homeDir, ".config", "palmdoc")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
