package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Desktop   DesktopConfig
	Registry  RegistryConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// DesktopConfig describes the desktop surface windows are placed on.
type DesktopConfig struct {
	Width       int `envconfig:"DESKTOP_WIDTH" default:"1920"`
	Height      int `envconfig:"DESKTOP_HEIGHT" default:"1080"`
	OriginX     int `envconfig:"DESKTOP_ORIGIN_X" default:"40"`
	OriginY     int `envconfig:"DESKTOP_ORIGIN_Y" default:"40"`
	SpawnJitter int `envconfig:"DESKTOP_SPAWN_JITTER" default:"200"`
}

// RegistryConfig holds application descriptor registry configuration.
type RegistryConfig struct {
	AppsDir string `envconfig:"APPS_DIR" default:"./apps"`
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
		Desktop: DesktopConfig{
			Width:       1920,
			Height:      1080,
			OriginX:     40,
			OriginY:     40,
			SpawnJitter: 200,
		},
		Registry: RegistryConfig{
			AppsDir: "./apps",
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
	}
}
