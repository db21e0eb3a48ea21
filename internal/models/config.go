// Package models - Service configuration and operational settings.
// This file defines configuration structures for all service components.
//
// Configuration Philosophy:
// - Hierarchical configuration with logical grouping (server, storage, security, etc.)
// - Environment-friendly defaults that work out of the box
// - Comprehensive validation to catch misconfigurations early
// - Support for multiple deployment scenarios (development, production, cloud)
package models

import (
	"errors"
	"fmt"
	"time"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
	StorageTypeSQLite   = "sqlite"
)

// Rate limiter backend constants
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Config is the root configuration structure containing all service settings.
type Config struct {
	Server        ServerConfig        `yaml:"server" json:"server"`               // HTTP server configuration
	Storage       StorageConfig       `yaml:"storage" json:"storage"`             // Credential store persistence
	Security      SecurityConfig      `yaml:"security" json:"security"`           // Tokens and rate limiting
	Highlight     HighlightConfig     `yaml:"highlight" json:"highlight"`         // Rendering options
	Logging       LoggingConfig       `yaml:"logging" json:"logging"`             // Logging and output configuration
	Metrics       MetricsConfig       `yaml:"metrics" json:"metrics"`             // Prometheus metrics endpoint
	Observability ObservabilityConfig `yaml:"observability" json:"observability"` // Tracing
}

type ServerConfig struct {
	Port         int           `yaml:"port" json:"port"`
	Host         string        `yaml:"host" json:"host"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
	TLSEnabled   bool          `yaml:"tls_enabled" json:"tls_enabled"`
	TLSCertFile  string        `yaml:"tls_cert_file" json:"tls_cert_file"`
	TLSKeyFile   string        `yaml:"tls_key_file" json:"tls_key_file"`
}

type StorageConfig struct {
	Type     string         `yaml:"type" json:"type"`
	Database DatabaseConfig `yaml:"database" json:"database"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
}

type SecurityConfig struct {
	// TokenSecret signs access tokens. When empty, a random secret is
	// generated at startup and tokens do not survive restarts.
	TokenSecret string          `yaml:"token_secret" json:"token_secret"`
	TokenTTL    time.Duration   `yaml:"token_ttl" json:"token_ttl"`
	RateLimit   RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled" json:"enabled"`
	Backend           string        `yaml:"backend" json:"backend"`
	RequestsPerWindow int           `yaml:"requests_per_window" json:"requests_per_window"`
	Window            time.Duration `yaml:"window" json:"window"`
	SweepInterval     time.Duration `yaml:"sweep_interval" json:"sweep_interval"`
	Redis             RedisConfig   `yaml:"redis" json:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

type HighlightConfig struct {
	DefaultTheme string `yaml:"default_theme" json:"default_theme"`
	LineNumbers  bool   `yaml:"line_numbers" json:"line_numbers"`
	CSSClass     string `yaml:"css_class" json:"css_class"`
}

type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Port    int    `yaml:"port" json:"port"`
	Path    string `yaml:"path" json:"path"`
}

type ObservabilityConfig struct {
	ServiceName string        `yaml:"service_name" json:"service_name"`
	Tracing     TracingConfig `yaml:"tracing" json:"tracing"`
}

type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	Exporter     string  `yaml:"exporter" json:"exporter"` // "stdout" or "otlp"
	OTLPEndpoint string  `yaml:"otlp_endpoint" json:"otlp_endpoint"`
	SampleRate   float64 `yaml:"sample_rate" json:"sample_rate"`
}

// NewDefaultConfig returns a configuration with sensible defaults that work
// out of the box with the in-memory credential store.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Storage: StorageConfig{
			Type: StorageTypeMemory,
			Database: DatabaseConfig{
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
		},
		Security: SecurityConfig{
			TokenTTL: 30 * time.Minute,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				Backend:           RateLimitBackendMemory,
				RequestsPerWindow: 100,
				Window:            60 * time.Second,
				SweepInterval:     5 * time.Minute,
			},
		},
		Highlight: HighlightConfig{
			DefaultTheme: "default",
			LineNumbers:  true,
			CSSClass:     "source",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
		Observability: ObservabilityConfig{
			ServiceName: "rainbox",
			Tracing: TracingConfig{
				Enabled:    false,
				Exporter:   "stdout",
				SampleRate: 1.0,
			},
		},
	}
}

// Validate checks the configuration for inconsistencies that would prevent
// the service from operating correctly.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.TLSEnabled {
		if c.Server.TLSCertFile == "" || c.Server.TLSKeyFile == "" {
			return errors.New("tls_cert_file and tls_key_file are required when TLS is enabled")
		}
	}

	switch c.Storage.Type {
	case StorageTypeMemory:
	case StorageTypePostgres, StorageTypeSQLite:
		if c.Storage.Database.DSN == "" {
			return fmt.Errorf("database DSN is required for %s storage", c.Storage.Type)
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	if c.Security.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}

	if err := c.Security.RateLimit.Validate(); err != nil {
		return err
	}

	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("invalid metrics port: %d", c.Metrics.Port)
	}

	return nil
}

// Validate checks rate limiter settings. A disabled limiter is always valid.
func (rl *RateLimitConfig) Validate() error {
	if !rl.Enabled {
		return nil
	}
	if rl.RequestsPerWindow <= 0 {
		return fmt.Errorf("rate limit requests_per_window must be positive, got %d", rl.RequestsPerWindow)
	}
	if rl.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %s", rl.Window)
	}
	switch rl.Backend {
	case RateLimitBackendMemory:
	case RateLimitBackendRedis:
		if rl.Redis.Addr == "" {
			return errors.New("redis addr is required for the redis rate limit backend")
		}
	default:
		return fmt.Errorf("unsupported rate limit backend: %s", rl.Backend)
	}
	return nil
}
