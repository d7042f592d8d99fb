package ai

import (
	"context"
	"log/slog"
	"sync"
)

// Pinger is the probe side of a local provider.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthTracker memoizes a single reachability probe for the local provider.
// The first Available call performs the probe; every later call returns the
// cached answer until Reset. Worst case under concurrent first calls is one
// redundant probe.
type HealthTracker struct {
	pinger Pinger
	logger *slog.Logger

	mu        sync.Mutex
	checked   bool
	available bool
}

// NewHealthTracker creates a tracker for the given probe target.
func NewHealthTracker(pinger Pinger, logger *slog.Logger) *HealthTracker {
	return &HealthTracker{pinger: pinger, logger: logger}
}

// Available reports whether the local provider answered the memoized probe.
func (t *HealthTracker) Available(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.checked {
		return t.available
	}

	t.checked = true
	if t.pinger == nil {
		t.available = false
		return false
	}

	if err := t.pinger.Ping(ctx); err != nil {
		t.available = false
		t.logger.Warn("local narrator not available", "error", err)
	} else {
		t.available = true
		t.logger.Info("local narrator detected and responsive")
	}
	return t.available
}

// Reset discards the memoized probe result so the next Available re-probes.
func (t *HealthTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checked = false
	t.available = false
}
