// Package auth implements registration, password login, and stateless bearer
// token verification on top of the credential store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rainbox/internal/models"
	"rainbox/internal/storage"
)

// dummyHash is a bcrypt hash of an unguessable value, compared against when a
// login names an unknown user so both failure paths do similar work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service verifies credentials against the credential store and issues and
// validates bearer tokens carrying a subject claim and expiry.
type Service struct {
	store    storage.Storage
	secret   []byte
	tokenTTL time.Duration
}

// NewService constructs an authenticator backed by the given credential store.
func NewService(store storage.Storage, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		store:    store,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user, storing only a one-way hash of the password.
// Username uniqueness is checked before email, so a username conflict is
// reported first even when both collide. The storage layer re-enforces both
// with unique constraints, closing the race between check and insert.
func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return "", storage.ErrDuplicateUsername
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return "", storage.ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(username, email, string(hash))
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return user.ID, nil
}

// Login verifies a username/password pair and mints an access token. Unknown
// usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Burn a comparison so the miss is not observably faster.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Username, s.secret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Resolve identifies the caller behind a bearer token. Used by the request
// pipeline for every protected endpoint.
func (s *Service) Resolve(token string) (Subject, error) {
	return VerifyToken(token, s.secret)
}
