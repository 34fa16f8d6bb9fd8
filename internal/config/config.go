// Package config handles reading and writing config.yaml in the app data
// directory (~/.scrapline by default).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	App     AppConfig     `yaml:"app"`
	OTP     OTPConfig     `yaml:"otp"`
	Storage StorageConfig `yaml:"storage"`
}

// AppConfig holds general client behaviour.
type AppConfig struct {
	DemoSeed bool `yaml:"demo_seed"` // seed sample pickups on an empty store
}

// OTPConfig controls the OTP entry session and the simulated verifier.
type OTPConfig struct {
	Length         int    `yaml:"length"`
	Code           string `yaml:"code"` // expected code for the simulated verifier
	ResendCooldown int    `yaml:"resend_cooldown"` // seconds
	VerifyDelayMs  int    `yaml:"verify_delay_ms"`
	ResendDelayMs  int    `yaml:"resend_delay_ms"`
}

// StorageConfig controls the durability service.
type StorageConfig struct {
	File string `yaml:"file"` // sqlite file name inside the data directory
}

const configFile = "config.yaml"

// DataDir returns the app data directory, creating it if necessary.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".scrapline")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// ReadConfig reads config.yaml from the given data directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given data directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with the reference defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		App: AppConfig{
			DemoSeed: true,
		},
		OTP: OTPConfig{
			Length:         6,
			Code:           "123456",
			ResendCooldown: 30,
			VerifyDelayMs:  800,
			ResendDelayMs:  1000,
		},
		Storage: StorageConfig{
			File: "scrapline.db",
		},
	}
}
