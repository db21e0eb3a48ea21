// Package models - API request types and input validation.
// This file defines all incoming API request structures with validation.
//
// Validation Philosophy:
// - Fail fast with clear error messages for invalid input
// - Normalize input data for consistent processing (trimmed strings, lowercase tags)
// - Provide sensible defaults where appropriate
package models

import (
	"errors"
	"fmt"
	"strings"
)

// RegisterRequest represents a request to create a new account.
//
// Security Notes:
// - The plaintext password only ever lives in this struct for the duration
//   of the request; the authenticator stores a one-way hash.
// - Username and email uniqueness is enforced by the credential store,
//   not here.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration fields and normalizes username and email.
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))

	if r.Username == "" {
		return errors.New("username is required")
	}
	if len(r.Username) > 50 {
		return errors.New("username must be 50 characters or fewer")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Email) > 100 {
		return errors.New("email must be 100 characters or fewer")
	}
	at := strings.Index(r.Email, "@")
	if at <= 0 || at == len(r.Email)-1 || !strings.Contains(r.Email[at+1:], ".") {
		return fmt.Errorf("invalid email address: %s", r.Email)
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if len(r.Password) < 5 {
		return errors.New("password must be at least 5 characters")
	}
	return nil
}

// HighlightRequest represents a request to render a code snippet as HTML.
// Theme is optional and falls back to the service's default theme.
type HighlightRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Theme    string `json:"theme,omitempty"`
}

// Validate checks the highlight fields and normalizes the language and theme
// tags. An empty theme is filled in with defaultTheme.
func (r *HighlightRequest) Validate(defaultTheme string) error {
	r.Language = strings.ToLower(strings.TrimSpace(r.Language))
	r.Theme = strings.ToLower(strings.TrimSpace(r.Theme))

	if r.Language == "" {
		return errors.New("language is required")
	}
	if r.Theme == "" {
		r.Theme = defaultTheme
	}
	return nil
}
