package sound

import (
	"sync"
	"time"

	"github.com/renato0307/playsound/internal/logging"
)

// SessionTracker tracks open non-blocking control-string sessions and closes
// them once their audio should have finished. Sweeping happens after each
// playback call; there is no timer goroutine.
type SessionTracker struct {
	mu    sync.Mutex
	open  map[string]time.Time // alias -> expiry
	close func(alias string) error
}

// NewSessionTracker creates a tracker that reclaims sessions with closeFn
func NewSessionTracker(closeFn func(alias string) error) *SessionTracker {
	return &SessionTracker{
		open:  make(map[string]time.Time),
		close: closeFn,
	}
}

// Track records an open session expected to end at expiry
func (t *SessionTracker) Track(alias string, expiry time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open[alias] = expiry
}

// Sweep closes every session whose expiry is before now and returns how many
// were removed. Close failures are dropped.
func (t *SessionTracker) Sweep(now time.Time) int {
	// Remove under the lock so concurrent sweeps never close the same alias
	t.mu.Lock()
	var expired []string
	for alias, expiry := range t.open {
		if expiry.Before(now) {
			expired = append(expired, alias)
			delete(t.open, alias)
		}
	}
	t.mu.Unlock()

	for _, alias := range expired {
		if err := t.close(alias); err != nil {
			logging.Logger.Debug("Failed to close expired session", "alias", alias, "error", err)
			continue
		}
		logging.Logger.Debug("Closed expired session", "alias", alias)
	}

	return len(expired)
}

// Len returns the number of tracked sessions
func (t *SessionTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.open)
}
