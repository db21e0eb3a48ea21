package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, StorageTypeMemory, config.Storage.Type)
	assert.Equal(t, RateLimitBackendMemory, config.Security.RateLimit.Backend)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "tls without files",
			mutate:  func(c *Config) { c.Server.TLSEnabled = true },
			wantErr: "tls_cert_file",
		},
		{
			name:    "unsupported storage",
			mutate:  func(c *Config) { c.Storage.Type = "cassandra" },
			wantErr: "unsupported storage type",
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *Config) { c.Storage.Type = StorageTypePostgres },
			wantErr: "database DSN is required",
		},
		{
			name:    "non-positive token ttl",
			mutate:  func(c *Config) { c.Security.TokenTTL = 0 },
			wantErr: "token_ttl",
		},
		{
			name:    "zero quota",
			mutate:  func(c *Config) { c.Security.RateLimit.RequestsPerWindow = 0 },
			wantErr: "requests_per_window",
		},
		{
			name:    "zero window",
			mutate:  func(c *Config) { c.Security.RateLimit.Window = 0 },
			wantErr: "window",
		},
		{
			name: "disabled rate limiter skips its validation",
			mutate: func(c *Config) {
				c.Security.RateLimit.Enabled = false
				c.Security.RateLimit.RequestsPerWindow = 0
			},
		},
		{
			name: "bad metrics port",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Port = -1
			},
			wantErr: "invalid metrics port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewDefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
