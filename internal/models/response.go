// Package models - API response types and error handling.
// This file defines all outgoing API response structures with consistent formatting.
//
// Response Design Principles:
// - Consistent JSON structure across all endpoints
// - Optional fields use omitempty to reduce response size
// - Machine-readable error codes alongside human-readable detail strings
// - RFC3339 timestamps for international compatibility
package models

import (
	"time"
)

// MessageResponse is a minimal success envelope for operations that create or
// change state without returning a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by the token endpoint on successful login.
// The field names follow the OAuth2 bearer-token convention so standard
// clients can consume it unchanged.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse provides structured error information with debugging context.
type ErrorResponse struct {
	Error     string    `json:"error"`                // Error type (always "error")
	Detail    string    `json:"detail"`               // Human-readable error description
	Code      string    `json:"code,omitempty"`       // Machine-readable error code
	Timestamp time.Time `json:"timestamp"`            // Error occurrence time
	RequestID string    `json:"request_id,omitempty"` // Unique request identifier
}

type HealthCheckResponse struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Health Status Constants
const (
	StatusHealthy   = "healthy"   // All systems operational
	StatusUnhealthy = "unhealthy" // Major system issues
)

// Standard HTTP Error Codes
//
// Error Code Strategy:
// - Upper-case with underscores for consistency
// - Maps to standard HTTP status codes
// - Machine-readable for client error handling
const (
	ErrorCodeBadRequest        = "BAD_REQUEST"         // 400: Invalid request data
	ErrorCodeDuplicateUsername = "DUPLICATE_USERNAME"  // 400: Username already registered
	ErrorCodeDuplicateEmail    = "DUPLICATE_EMAIL"     // 400: Email already registered
	ErrorCodeUnauthorized      = "UNAUTHORIZED"        // 401: Authentication required or failed
	ErrorCodeRateLimited       = "RATE_LIMIT_EXCEEDED" // 429: Per-user quota exhausted
	ErrorCodeInternalError     = "INTERNAL_ERROR"      // 500: Server-side error
)

func NewErrorResponse(detail string, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:     "error",
		Detail:    detail,
		Code:      code,
		Timestamp: time.Now(),
	}
}

func NewHealthCheckResponse(status string) *HealthCheckResponse {
	return &HealthCheckResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}
}

func (h *HealthCheckResponse) AddComponent(name, status, message string) {
	h.Components[name] = ComponentHealth{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}
}
