package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("user-id-1", "alice", testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-id-1", subject.ID)
	assert.Equal(t, "alice", subject.Username)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-id-1", "alice", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-id-1", "alice", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("a-different-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyToken(tt.token, testSecret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	token, err := GenerateToken("", "alice", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
