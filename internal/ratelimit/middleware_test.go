package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
)

func newTestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func subjectFromHeader(r *http.Request) (string, bool) {
	subject := r.Header.Get("X-Test-Subject")
	return subject, subject != ""
}

func TestMiddleware_AllowedRequest(t *testing.T) {
	limiter := NewFixedWindowLimiter(5, time.Minute, 5*time.Minute)
	defer limiter.Close()

	handler := Middleware(limiter, subjectFromHeader)(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Test-Subject", "user-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestMiddleware_DeniedRequest(t *testing.T) {
	limiter := NewFixedWindowLimiter(2, time.Minute, 5*time.Minute)
	defer limiter.Close()

	handler := Middleware(limiter, subjectFromHeader)(newTestHandler())

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Test-Subject", "user-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	do()
	do()
	rec := do()

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Rate limit exceeded. Maximum 2 requests per 60 seconds.", errResp.Detail)
	assert.Equal(t, models.ErrorCodeRateLimited, errResp.Code)
}

func TestMiddleware_NoSubjectPassesThrough(t *testing.T) {
	limiter := NewFixedWindowLimiter(1, time.Minute, 5*time.Minute)
	defer limiter.Close()

	handler := Middleware(limiter, subjectFromHeader)(newTestHandler())

	// Without a subject the limiter is never consulted, no matter how many
	// requests come through.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestMiddleware_SubjectsIsolated(t *testing.T) {
	limiter := NewFixedWindowLimiter(1, time.Minute, 5*time.Minute)
	defer limiter.Close()

	handler := Middleware(limiter, subjectFromHeader)(newTestHandler())

	do := func(subject string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Test-Subject", subject)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("user-1"))
	assert.Equal(t, http.StatusTooManyRequests, do("user-1"))
	assert.Equal(t, http.StatusOK, do("user-2"))
}
