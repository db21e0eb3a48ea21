package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisLimiter_MissingAddr(t *testing.T) {
	_, err := NewRedisLimiter(RedisOptions{}, 100, time.Minute)
	assert.ErrorContains(t, err, "redis address is required")
}

func TestNewRedisLimiter_Unreachable(t *testing.T) {
	_, err := NewRedisLimiter(RedisOptions{Addr: "127.0.0.1:1"}, 100, time.Minute)
	assert.ErrorContains(t, err, "redis ping failed")
}
