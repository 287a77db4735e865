package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Interop   InteropConfig
	Storage   StorageConfig
	Device    DeviceConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`

	// Global shares one limiter across all clients instead of one per IP
	Global bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false"`
}

// InteropConfig controls the capability registry.
type InteropConfig struct {
	// Strict rejects a second registration under the same name
	Strict bool `envconfig:"INTEROP_STRICT" default:"true"`
}

// StorageConfig selects the storage backend. An empty path keeps data in memory.
type StorageConfig struct {
	Path string `envconfig:"STORAGE_PATH" default:""`
}

// DeviceConfig holds device info sources.
type DeviceConfig struct {
	BundleID      string `envconfig:"BUNDLE_ID" default:"com.example.newarchspike"`
	ManifestPath  string `envconfig:"APP_MANIFEST" default:""`
	OSReleasePath string `envconfig:"OS_RELEASE_PATH" default:"/etc/os-release"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Interop: InteropConfig{
			Strict: true,
		},
		Device: DeviceConfig{
			BundleID:      "com.example.newarchspike",
			OSReleasePath: "/etc/os-release",
		},
	}
}
