package storage

import (
	"context"
	"strings"
	"sync"

	"rainbox/internal/models"
)

// MemoryStorage implements the Storage interface using in-memory data structures.
// This provider is ideal for development, testing, and scenarios where data
// persistence is not required. It provides fast access but data is lost on restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	byID     map[string]*models.User
	username map[string]string // lowercased username -> ID
	email    map[string]string // lowercased email -> ID
}

// NewMemoryStorage creates a new memory-based storage instance
func NewMemoryStorage(config Config) (*MemoryStorage, error) {
	return &MemoryStorage{
		byID:     make(map[string]*models.User),
		username: make(map[string]string),
		email:    make(map[string]string),
	}, nil
}

// CreateUser persists a new user. Uniqueness of username and email is checked
// under the same lock as the insert, mirroring a database unique constraint.
func (m *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.username[strings.ToLower(user.Username)]; exists {
		return ErrDuplicateUsername
	}
	if _, exists := m.email[strings.ToLower(user.Email)]; exists {
		return ErrDuplicateEmail
	}

	// Store a copy to prevent external modification
	userCopy := *user
	m.byID[user.ID] = &userCopy
	m.username[strings.ToLower(user.Username)] = user.ID
	m.email[strings.ToLower(user.Email)] = user.ID

	return nil
}

// GetUserByUsername retrieves a user by username.
func (m *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.username[strings.ToLower(username)]
	if !exists {
		return nil, ErrUserNotFound
	}

	// Return a copy
	userCopy := *m.byID[id]
	return &userCopy, nil
}

// GetUserByEmail retrieves a user by email.
func (m *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.email[strings.ToLower(email)]
	if !exists {
		return nil, ErrUserNotFound
	}

	userCopy := *m.byID[id]
	return &userCopy, nil
}

// Ping always succeeds for memory storage.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for memory storage.
func (m *MemoryStorage) Close() error {
	return nil
}
