package contact

import (
	"sync"
	"time"
)

// Ledger is a per-IP trailing-window submission counter. It lives in process
// memory and is reset on restart.
type Ledger struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string][]time.Time
	now     func() time.Time
}

// NewLedger returns a ledger allowing max attempts per window.
func NewLedger(window time.Duration, max int) *Ledger {
	return &Ledger{
		window:  window,
		max:     max,
		entries: map[string][]time.Time{},
		now:     time.Now,
	}
}

// Allow prunes the IP's attempts outside the window and reports whether
// another attempt fits. An allowed attempt is recorded immediately.
func (l *Ledger) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.prune(l.entries[ip], now)
	if len(recent) >= l.max {
		l.entries[ip] = recent
		return false
	}
	l.entries[ip] = append(recent, now)
	return true
}

// Sweep drops IPs with no attempts left inside the window and returns how
// many were removed.
func (l *Ledger) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for ip, attempts := range l.entries {
		recent := l.prune(attempts, now)
		if len(recent) == 0 {
			delete(l.entries, ip)
			removed++
			continue
		}
		l.entries[ip] = recent
	}
	return removed
}

// Len returns the number of tracked IPs.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Ledger) prune(attempts []time.Time, now time.Time) []time.Time {
	recent := attempts[:0]
	for _, at := range attempts {
		if now.Sub(at) < l.window {
			recent = append(recent, at)
		}
	}
	return recent
}
