// Package config loads service configuration from a YAML file and RAINBOX_*
// environment variables, in that order of precedence (environment wins).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"rainbox/internal/models"
)

// Load loads configuration from file and environment variables
func Load(configPath string) (*models.Config, error) {
	// Start with default configuration
	config := models.NewDefaultConfig()

	// Load from file if provided and exists
	if configPath != "" {
		if err := loadFromFile(config, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnvironment(config)

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(config *models.Config, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

// loadFromEnvironment loads configuration from environment variables
func loadFromEnvironment(config *models.Config) {
	// Server configuration
	if port := os.Getenv("RAINBOX_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if host := os.Getenv("RAINBOX_HOST"); host != "" {
		config.Server.Host = host
	}

	if timeout := os.Getenv("RAINBOX_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.ReadTimeout = d
		}
	}

	if timeout := os.Getenv("RAINBOX_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.WriteTimeout = d
		}
	}

	if timeout := os.Getenv("RAINBOX_IDLE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.IdleTimeout = d
		}
	}

	if tls := os.Getenv("RAINBOX_TLS_ENABLED"); tls != "" {
		config.Server.TLSEnabled = strings.ToLower(tls) == "true"
	}

	if certFile := os.Getenv("RAINBOX_TLS_CERT_FILE"); certFile != "" {
		config.Server.TLSCertFile = certFile
	}

	if keyFile := os.Getenv("RAINBOX_TLS_KEY_FILE"); keyFile != "" {
		config.Server.TLSKeyFile = keyFile
	}

	// Storage configuration
	if storageType := os.Getenv("RAINBOX_STORAGE_TYPE"); storageType != "" {
		config.Storage.Type = storageType
	}

	if dsn := os.Getenv("RAINBOX_DATABASE_DSN"); dsn != "" {
		config.Storage.Database.DSN = dsn
	}

	if maxOpen := os.Getenv("RAINBOX_DATABASE_MAX_OPEN_CONNS"); maxOpen != "" {
		if conns, err := strconv.Atoi(maxOpen); err == nil {
			config.Storage.Database.MaxOpenConns = conns
		}
	}

	if maxIdle := os.Getenv("RAINBOX_DATABASE_MAX_IDLE_CONNS"); maxIdle != "" {
		if conns, err := strconv.Atoi(maxIdle); err == nil {
			config.Storage.Database.MaxIdleConns = conns
		}
	}

	// Security configuration
	if secret := os.Getenv("RAINBOX_TOKEN_SECRET"); secret != "" {
		config.Security.TokenSecret = secret
	}

	if ttl := os.Getenv("RAINBOX_TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.Security.TokenTTL = d
		}
	}

	if enabled := os.Getenv("RAINBOX_RATE_LIMIT_ENABLED"); enabled != "" {
		config.Security.RateLimit.Enabled = strings.ToLower(enabled) == "true"
	}

	if backend := os.Getenv("RAINBOX_RATE_LIMIT_BACKEND"); backend != "" {
		config.Security.RateLimit.Backend = backend
	}

	if requests := os.Getenv("RAINBOX_RATE_LIMIT_REQUESTS"); requests != "" {
		if n, err := strconv.Atoi(requests); err == nil {
			config.Security.RateLimit.RequestsPerWindow = n
		}
	}

	if window := os.Getenv("RAINBOX_RATE_LIMIT_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			config.Security.RateLimit.Window = d
		}
	}

	if addr := os.Getenv("RAINBOX_REDIS_ADDR"); addr != "" {
		config.Security.RateLimit.Redis.Addr = addr
	}

	if password := os.Getenv("RAINBOX_REDIS_PASSWORD"); password != "" {
		config.Security.RateLimit.Redis.Password = password
	}

	// Highlighting configuration
	if theme := os.Getenv("RAINBOX_DEFAULT_THEME"); theme != "" {
		config.Highlight.DefaultTheme = theme
	}

	// Logging configuration
	if level := os.Getenv("RAINBOX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("RAINBOX_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if output := os.Getenv("RAINBOX_LOG_OUTPUT"); output != "" {
		config.Logging.Output = output
	}

	if filePath := os.Getenv("RAINBOX_LOG_FILE_PATH"); filePath != "" {
		config.Logging.FilePath = filePath
	}

	// Metrics configuration
	if enabled := os.Getenv("RAINBOX_METRICS_ENABLED"); enabled != "" {
		config.Metrics.Enabled = strings.ToLower(enabled) == "true"
	}

	if port := os.Getenv("RAINBOX_METRICS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Metrics.Port = p
		}
	}

	// Observability configuration
	if tracing := os.Getenv("RAINBOX_TRACING_ENABLED"); tracing != "" {
		config.Observability.Tracing.Enabled = strings.ToLower(tracing) == "true"
	}

	if endpoint := os.Getenv("RAINBOX_OTLP_ENDPOINT"); endpoint != "" {
		config.Observability.Tracing.OTLPEndpoint = endpoint
	}
}
