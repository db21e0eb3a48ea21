package ratelimit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"rainbox/internal/models"
)

// SubjectFunc extracts the rate-limit subject from a request. Returning
// ok=false means the request has no authenticated subject; the middleware
// passes it through untouched and leaves rejection to the auth layer.
type SubjectFunc func(r *http.Request) (subject string, ok bool)

// Middleware returns HTTP middleware that enforces the per-subject quota.
// It must run after authentication, since the subject comes from the request
// context via subjectFn. Rate limit headers are set on every response; denied
// requests get a 429 whose detail names the configured quota and window.
func Middleware(limiter Limiter, subjectFn SubjectFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, ok := subjectFn(r)
			if !ok || subject == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, info := limiter.Allow(r.Context(), subject)

			// Always set rate limit headers
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetAt.Unix()))

			if !allowed {
				retryAfterSecs := int(info.RetryAfter.Seconds()) + 1
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSecs))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)

				detail := fmt.Sprintf("Rate limit exceeded. Maximum %d requests per %d seconds.",
					info.Limit, int(info.Window.Seconds()))
				errorResp := models.NewErrorResponse(detail, models.ErrorCodeRateLimited)
				json.NewEncoder(w).Encode(errorResp)

				slog.Warn("Rate limit exceeded",
					"subject", subject,
					"limit", info.Limit,
					"retry_after", retryAfterSecs,
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
