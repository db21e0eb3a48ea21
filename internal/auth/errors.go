package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken is returned when a token fails signature or format checks.
	ErrInvalidToken = errors.New("invalid access token")

	// ErrExpiredToken is returned when a token is well-formed but past its expiry.
	ErrExpiredToken = errors.New("access token expired")
)
