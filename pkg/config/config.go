/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/charcard/pkg/card"
)

// DefaultMaxImageBytes bounds the images the CLI and API accept.
const DefaultMaxImageBytes = 20 << 20

// Config represents the charcard configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
	Limits  Limits  `yaml:"limits"`
	Export  Export  `yaml:"export"`
}

// Server contains HTTP API configuration
type Server struct {
	Port   int    `yaml:"port" env:"CHARCARD_PORT"`
	Bind   string `yaml:"bind" env:"CHARCARD_BIND"`
	APIKey string `yaml:"api_key" env:"CHARCARD_API_KEY"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level" env:"CHARCARD_LOG_LEVEL"`
	Format string `yaml:"format" env:"CHARCARD_LOG_FORMAT"`
}

// Limits bounds the input the codec is handed
type Limits struct {
	MaxImageBytes int64 `yaml:"max_image_bytes" env:"CHARCARD_MAX_IMAGE_BYTES"`
}

// Export contains the authoring fields written into exported cards
type Export struct {
	Creator          string `yaml:"creator" env:"CHARCARD_EXPORT_CREATOR"`
	CreatorNotes     string `yaml:"creator_notes" env:"CHARCARD_EXPORT_CREATOR_NOTES"`
	CharacterVersion string `yaml:"character_version" env:"CHARCARD_EXPORT_CHARACTER_VERSION"`
}

// Options converts the export section into card export options
func (e Export) Options() card.ExportOptions {
	return card.ExportOptions{
		Creator:          e.Creator,
		CreatorNotes:     e.CreatorNotes,
		CharacterVersion: e.CharacterVersion,
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	opts := card.DefaultExportOptions()
	return &Config{
		Server: Server{
			Port: 9300,
			Bind: "127.0.0.1",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Limits: Limits{
			MaxImageBytes: DefaultMaxImageBytes,
		},
		Export: Export{
			Creator:          opts.Creator,
			CreatorNotes:     opts.CreatorNotes,
			CharacterVersion: opts.CharacterVersion,
		},
	}
}

// LoadConfig loads configuration from the specified path.
// Keys missing from the file keep their default values.
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

	return config, nil
}

// Load reads the config file when it exists, falls back to defaults when it
// does not, and then applies environment overrides.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath != "" && ConfigExists(configPath) {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if err := ApplyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides config fields from CHARCARD_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file carries the API key.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key and saves it
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./charcard.yaml"
	}

	// For Linux/macOS, use ~/.config/charcard/config.yaml
	configDir := filepath.Join(homeDir, ".config", "charcard")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
