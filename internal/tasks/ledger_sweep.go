package tasks

import (
	"sync"
	"time"

	"github.com/webbplats/site/internal/logging"
)

// DefaultSweepInterval applies when no interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// Sweeper is implemented by the contact rate limit ledger.
type Sweeper interface {
	Sweep() int
}

// LedgerSweep periodically drops rate limit entries that fell out of the window
type LedgerSweep struct {
	ledger   Sweeper
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLedgerSweep creates a new ledger sweep task
func NewLedgerSweep(ledger Sweeper, interval time.Duration) *LedgerSweep {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &LedgerSweep{
		ledger:   ledger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the sweep task in the background
func (ls *LedgerSweep) Start() {
	ls.wg.Add(1)
	go ls.runPeriodically()
}

// Stop gracefully stops the sweep task
func (ls *LedgerSweep) Stop() {
	ls.stopOnce.Do(func() { close(ls.done) })
	ls.wg.Wait()
}

// runPeriodically sweeps at every interval until stopped
func (ls *LedgerSweep) runPeriodically() {
	defer ls.wg.Done()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting ledger sweep task every %s", ls.interval)

	ticker := time.NewTicker(ls.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := ls.ledger.Sweep(); removed > 0 {
				logger.Debug("Ledger sweep removed %d idle IPs", removed)
			}
		case <-ls.done:
			logger.Info("Ledger sweep task stopped")
			return
		}
	}
}
