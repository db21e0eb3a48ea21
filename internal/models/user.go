package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password hash is opaque to everything
// outside the credential store and the authenticator, and is never serialized
// into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a user record with a fresh ID and timestamps. The caller
// supplies an already-hashed password.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           NewUserID(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewUserID generates a new UUID v4 for use as a User ID.
func NewUserID() string {
	return uuid.New().String()
}
