package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the username for log context.
// The subject claim holds the user ID, which is what the rate limiter keys on.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// Subject is the authenticated identity derived from a validated token.
type Subject struct {
	ID       string
	Username string
}

// GenerateToken mints a signed HS256 bearer token for the given user.
// Validity is embedded in the token payload; nothing is stored server-side.
func GenerateToken(userID, username string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	})
	return token.SignedString(secret)
}

// VerifyToken validates a bearer token and returns the subject it encodes.
// Verification is a pure function of the token bytes and the signing secret;
// no storage round-trip is involved.
func VerifyToken(tokenString string, secret []byte) (Subject, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, ErrExpiredToken
		}
		return Subject{}, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return Subject{}, ErrInvalidToken
	}

	return Subject{ID: claims.Subject, Username: claims.Username}, nil
}
