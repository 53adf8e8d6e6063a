// Package config loads and persists Blaze64's yaml configuration: server
// settings plus the codec thresholds. The cutoffs are deliberately
// configuration rather than constants; the defaults match the documented
// contract surface.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/avelis/blaze64/pkg/codec"
)

// Config represents the Blaze64 configuration
type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
	Codec    Codec    `yaml:"codec"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Codec contains the codec threshold configuration. Zero values fall back
// to the library defaults when converted with CodecConfig.
type Codec struct {
	MultithreadThreshold int `yaml:"multithread_threshold"`
	LargeThreshold       int `yaml:"large_threshold"`
	MinChunkSize         int `yaml:"min_chunk_size"`
	PipelineChunkSize    int `yaml:"pipeline_chunk_size"`
	MaxThreads           int `yaml:"max_threads"`
	MaxInputSize         int `yaml:"max_input_size"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
		Codec: Codec{
			MultithreadThreshold: codec.DefaultMultithreadThreshold,
			LargeThreshold:       codec.DefaultLargeThreshold,
			MinChunkSize:         codec.DefaultMinChunkSize,
			PipelineChunkSize:    codec.DefaultPipelineChunkSize,
			MaxThreads:           codec.DefaultMaxThreads,
			MaxInputSize:         codec.DefaultMaxInputSize,
		},
	}
}

// CodecConfig converts the yaml codec section into a codec.Config,
// substituting library defaults for unset fields.
func (c *Config) CodecConfig() codec.Config {
	cfg := codec.DefaultConfig()
	if c.Codec.MultithreadThreshold > 0 {
		cfg.MultithreadThreshold = c.Codec.MultithreadThreshold
	}
	if c.Codec.LargeThreshold > 0 {
		cfg.LargeThreshold = c.Codec.LargeThreshold
	}
	if c.Codec.MinChunkSize > 0 {
		cfg.MinChunkSize = c.Codec.MinChunkSize
	}
	if c.Codec.PipelineChunkSize > 0 {
		cfg.PipelineChunkSize = c.Codec.PipelineChunkSize
	}
	if c.Codec.MaxThreads > 0 {
		cfg.MaxThreads = c.Codec.MaxThreads
	}
	if c.Codec.MaxInputSize > 0 {
		cfg.MaxInputSize = c.Codec.MaxInputSize
	}
	return cfg
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
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

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
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

// BootstrapConfig creates a new configuration with a generated API key and
// saves it to configPath.
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./blaze64.yaml"
	}

	// For Linux/macOS, use ~/.config/blaze64/config.yaml
	configDir := filepath.Join(homeDir, ".config", "blaze64")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
