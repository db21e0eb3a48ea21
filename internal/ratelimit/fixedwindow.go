package ratelimit

import (
	"context"
	"sync"
	"time"
)

// window holds one subject's state: requests observed in the current window
// and when that window opened. count is at least 1 once the entry exists, and
// windowStart only moves forward via reset.
type window struct {
	count       int
	windowStart time.Time
}

// FixedWindowLimiter is an in-memory fixed-window counter keyed by subject.
// Each subject's check is a read-modify-write of its window entry, guarded by
// a single lock on the map; contention is low because the critical section is
// a few comparisons. A background goroutine periodically evicts entries whose
// window has expired, so the map stays bounded by the set of subjects active
// within any one window.
type FixedWindowLimiter struct {
	limit         int
	windowLen     time.Duration
	sweepInterval time.Duration

	mu      sync.Mutex
	windows map[string]*window
	done    chan struct{}
	closed  bool

	// now is replaceable in tests for deterministic window arithmetic.
	now func() time.Time
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per subject
// per windowLen. It starts a background goroutine that sweeps expired entries
// every sweepInterval.
func NewFixedWindowLimiter(limit int, windowLen, sweepInterval time.Duration) *FixedWindowLimiter {
	l := &FixedWindowLimiter{
		limit:         limit,
		windowLen:     windowLen,
		sweepInterval: sweepInterval,
		windows:       make(map[string]*window),
		done:          make(chan struct{}),
		now:           time.Now,
	}
	go l.sweep()
	return l
}

// Allow checks whether a request from the given subject should be allowed.
//
// The first request from a subject opens a window with count 1. Once
// windowLen has elapsed the next request resets the window regardless of the
// prior count. Within a window the counter increments on every call,
// including denied ones: the limit-th request is allowed, the one after it is
// denied, and the denial still consumes a slot.
func (l *FixedWindowLimiter) Allow(_ context.Context, subject string) (bool, Info) {
	now := l.now()

	l.mu.Lock()
	w, exists := l.windows[subject]
	switch {
	case !exists:
		w = &window{count: 1, windowStart: now}
		l.windows[subject] = w
	case now.Sub(w.windowStart) >= l.windowLen:
		w.count = 1
		w.windowStart = now
	default:
		w.count++
	}
	count := w.count
	start := w.windowStart
	l.mu.Unlock()

	allowed := count <= l.limit

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	resetAt := start.Add(l.windowLen)
	info := Info{
		Limit:     l.limit,
		Window:    l.windowLen,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !allowed {
		info.RetryAfter = resetAt.Sub(now)
	}

	return allowed, info
}

// Close stops the background sweep goroutine.
func (l *FixedWindowLimiter) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.done)
	}
}

// sweep periodically evicts entries whose window has already expired. An
// evicted subject's next request would have reset its window anyway, so
// eviction never changes admission decisions.
func (l *FixedWindowLimiter) sweep() {
	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictExpired()
		}
	}
}

func (l *FixedWindowLimiter) evictExpired() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for subject, w := range l.windows {
		if now.Sub(w.windowStart) >= l.windowLen {
			delete(l.windows, subject)
		}
	}
}
