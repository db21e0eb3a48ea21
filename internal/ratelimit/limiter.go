// Package ratelimit provides per-subject request throttling using a fixed
// window counter: discrete, non-overlapping time buckets with a hard reset at
// each boundary. A request that exceeds the quota still consumes a slot, so
// the scheme is intentionally bursty at window boundaries rather than smooth.
// It includes HTTP middleware that sets standard rate limit response headers.
package ratelimit

import (
	"context"
	"time"
)

// Limiter defines the rate limiting contract. Implementations must be safe for
// concurrent use, and the check itself must stay O(1) per call.
type Limiter interface {
	// Allow checks whether a request from the given subject should be
	// allowed. Subject must be non-empty. Returns whether the request is
	// allowed and rate information for populating response headers.
	Allow(ctx context.Context, subject string) (allowed bool, info Info)

	// Close stops background goroutines and releases resources.
	Close()
}

// Info contains rate limit state for populating response headers and the
// denial message.
type Info struct {
	Limit      int           // Maximum requests per window
	Window     time.Duration // Window length
	Remaining  int           // Requests left in the current window
	ResetAt    time.Time     // When the current window ends
	RetryAfter time.Duration // How long to wait (meaningful only when denied)
}
