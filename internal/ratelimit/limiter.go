// Package ratelimit implements the per-client submission gate: one accepted
// request per client key per window, backed by an in-process map. The table
// is process-local; a multi-instance deployment needs an external store with
// TTL for a consistent global limit.
package ratelimit

import (
	"sync"
	"time"

	"github.com/dawitk/portfolio-relay/internal/logging"
)

const (
	// DefaultWindow is the minimum time between accepted requests from the
	// same client key.
	DefaultWindow = 30 * time.Second

	// DefaultSweepInterval is how often stale entries are evicted.
	DefaultSweepInterval = 5 * time.Minute
)

// Limiter tracks the last accepted request per client key.
type Limiter struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	window   time.Duration
	done     chan struct{}
	stopOnce sync.Once

	// now is swappable for tests
	now func() time.Time
}

// New creates a limiter with the given window.
func New(window time.Duration) *Limiter {
	return &Limiter{
		lastSeen: make(map[string]time.Time),
		window:   window,
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Allow reports whether a request from key may proceed. On acceptance the
// key's timestamp is recorded immediately, closing the race window between
// concurrent requests from the same client. This is a soft limit: the window
// is coarse and a lost race costs at most one extra accepted request.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.lastSeen[key]; ok && now.Sub(last) < l.window {
		return false
	}
	l.lastSeen[key] = now
	return true
}

// Start begins the background sweep task
func (l *Limiter) Start(interval time.Duration) {
	go l.runPeriodically(interval)
}

// Stop terminates the background sweep task
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// runPeriodically runs the sweep at regular intervals
func (l *Limiter) runPeriodically(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := l.sweep()
			if removed > 0 {
				logging.GetGlobalLogger().Debug("Rate limit sweep evicted %d stale entries", removed)
			}
		case <-l.done:
			return
		}
	}
}

// sweep evicts entries idle longer than twice the window. Stale entries only
// waste memory; they can never cause a false accept.
func (l *Limiter) sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, last := range l.lastSeen {
		if now.Sub(last) > 2*l.window {
			delete(l.lastSeen, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked client keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lastSeen)
}
