package storage

import "errors"

// Sentinel errors shared by all storage backends. Database implementations
// map their driver-specific unique-violation errors onto these so callers
// never see backend details.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)
