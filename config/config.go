// Package config provides configuration loading and management for the
// property checker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete property-checker configuration
type Config struct {
	NATS    NATSConfig    `yaml:"nats"`
	RefData RefDataConfig `yaml:"refdata"`
	Catalog CatalogConfig `yaml:"catalog"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (default: nats://localhost:4222)
	URL string `yaml:"url"`
	// Name identifies this client on the NATS connection
	Name string `yaml:"name"`
}

// RefDataConfig configures the reference-data client
type RefDataConfig struct {
	// BaseURL is the reference-data service root (empty = public service)
	BaseURL string `yaml:"base_url"`
	// APIKey is sent as the X-API-KEY header when non-empty
	APIKey string `yaml:"api_key"`
	// CacheTTL is how long fetched collections stay fresh
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// CatalogConfig configures the rule catalog
type CatalogConfig struct {
	// Path is a YAML rule catalog to load (empty = built-in DCAT catalog)
	Path string `yaml:"path"`
}

// MetricsConfig configures the Prometheus exposition endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled)
	Addr string `yaml:"addr"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:  "nats://localhost:4222",
			Name: "propcheck",
		},
		RefData: RefDataConfig{
			BaseURL:  "", // Public service
			CacheTTL: 24 * time.Hour,
		},
		Catalog: CatalogConfig{
			Path: "", // Built-in catalog
		},
		Metrics: MetricsConfig{
			Addr: ":9102",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required")
	}
	if c.RefData.CacheTTL < 0 {
		return fmt.Errorf("refdata.cache_ttl must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Name != "" {
		c.NATS.Name = other.NATS.Name
	}

	if other.RefData.BaseURL != "" {
		c.RefData.BaseURL = other.RefData.BaseURL
	}
	if other.RefData.APIKey != "" {
		c.RefData.APIKey = other.RefData.APIKey
	}
	if other.RefData.CacheTTL != 0 {
		c.RefData.CacheTTL = other.RefData.CacheTTL
	}

	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}

	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
