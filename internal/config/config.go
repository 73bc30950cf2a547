// Package config provides configuration management.
//
// Settings come from an optional JSON file, then from the environment.
// Environment variables win over the file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"

	"import-duty/internal/errors"
	"import-duty/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rates contains rate table configuration
	Rates RatesConfig `json:"rates"`

	// Format contains number formatting configuration
	Format FormatConfig `json:"format"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RatesConfig contains rate table settings
type RatesConfig struct {
	// File is an optional .hcl or .json override of the builtin tables
	File string `json:"file,omitempty" env:"IMPORT_DUTY_RATES_FILE"`
}

// FormatConfig contains display settings
type FormatConfig struct {
	// Locale is the BCP 47 tag used for digit grouping
	Locale string `json:"locale" env:"IMPORT_DUTY_LOCALE"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"IMPORT_DUTY_ADDR"`

	// Mode is the gin mode (debug, release, test)
	Mode string `json:"mode" env:"GIN_MODE"`

	// ReadTimeout bounds reading a request
	ReadTimeout Duration `json:"read_timeout"`

	// WriteTimeout bounds writing a response
	WriteTimeout Duration `json:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout Duration `json:"shutdown_timeout"`
}

// Duration is a time.Duration that reads and writes "10s" style JSON strings
type Duration struct {
	time.Duration
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Format: FormatConfig{
			Locale: "en-US",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.import-duty.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".import-duty.json"
	}
	return filepath.Join(homeDir, ".import-duty.json")
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, errors.Config("failed to parse config file", err).WithContext("path", path)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Config("failed to read config file", err).WithContext("path", path)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any IMPORT_DUTY_* variables that are set
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.Config("failed to parse environment", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
