package storage

import (
	"context"

	"rainbox/internal/models"
)

// Storage defines the interface for user credential persistence. It provides
// a clean abstraction that can be implemented by different backends such as
// an in-memory map, SQLite, or PostgreSQL.
//
// All implementations must enforce username and email uniqueness with a
// transactional guarantee at the storage layer (unique constraints), so the
// check-then-insert sequence in the authenticator cannot race.
type Storage interface {
	// CreateUser persists a new user. Returns ErrDuplicateUsername or
	// ErrDuplicateEmail when a unique constraint is violated.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns ErrUserNotFound when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email.
	// Returns ErrUserNotFound when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// Ping verifies the backend is reachable, for health checks.
	Ping(ctx context.Context) error

	// Close closes the storage connection and cleans up resources
	Close() error
}

// Config holds configuration for storage backends
type Config struct {
	// Type specifies the storage backend type (memory, sqlite, postgres)
	Type string `json:"type" yaml:"type"`

	// ConnectionString is used for database backends
	ConnectionString string `json:"connection_string,omitempty" yaml:"connection_string,omitempty"`

	// MaxOpenConns caps the connection pool size for database backends
	MaxOpenConns int `json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`

	// MaxIdleConns caps idle pooled connections for database backends
	MaxIdleConns int `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
}
