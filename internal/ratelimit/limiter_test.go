package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func newTestLimiter(window time.Duration) (*Limiter, *time.Time) {
	l := New(window)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllowWithinWindow(t *testing.T) {
	l, current := newTestLimiter(30 * time.Second)

	if !l.Allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Error("second request within window should be rejected")
	}

	*current = current.Add(29 * time.Second)
	if l.Allow("1.2.3.4") {
		t.Error("request at 29s should still be rejected")
	}

	*current = current.Add(1 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Error("request at 30s should be allowed")
	}
}

func TestAllowIndependentKeys(t *testing.T) {
	l, _ := newTestLimiter(30 * time.Second)

	if !l.Allow("1.2.3.4") {
		t.Fatal("first client should be allowed")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("different client should be allowed")
	}
	if !l.Allow("unknown") {
		t.Error("sentinel key should be tracked like any other")
	}
}

func TestRejectionDoesNotExtendWindow(t *testing.T) {
	l, current := newTestLimiter(30 * time.Second)

	l.Allow("1.2.3.4")
	*current = current.Add(20 * time.Second)
	l.Allow("1.2.3.4") // rejected, must not refresh the timestamp

	*current = current.Add(10 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Error("request 30s after the accepted one should be allowed")
	}
}

func TestSweepEvictsStaleEntries(t *testing.T) {
	l, current := newTestLimiter(30 * time.Second)

	l.Allow("stale")
	*current = current.Add(45 * time.Second)
	l.Allow("fresh")

	// "stale" is 45s old: past the window but not past 2x the window yet.
	if removed := l.sweep(); removed != 0 {
		t.Errorf("sweep removed %d entries, want 0", removed)
	}

	*current = current.Add(20 * time.Second)
	// "stale" is now 65s old, "fresh" 20s old.
	if removed := l.sweep(); removed != 1 {
		t.Errorf("sweep removed %d entries, want 1", removed)
	}
	if l.Len() != 1 {
		t.Errorf("limiter tracks %d keys after sweep, want 1", l.Len())
	}

	// Eviction is memory-bound, not correctness-bound: the swept key starts
	// a fresh window.
	if !l.Allow("stale") {
		t.Error("swept key should be allowed again")
	}
}

func TestAllowConcurrent(t *testing.T) {
	l := New(30 * time.Second)

	var wg sync.WaitGroup
	allowed := make(chan struct{}, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("same-key") {
				allowed <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for range allowed {
		count++
	}
	if count != 1 {
		t.Errorf("%d concurrent requests accepted for one key, want 1", count)
	}
}
