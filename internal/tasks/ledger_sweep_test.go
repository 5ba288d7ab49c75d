package tasks

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/webbplats/site/internal/contact"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestLedgerSweepRunsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	task := NewLedgerSweep(sweeper, 5*time.Millisecond)

	task.Start()
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, time.Millisecond)

	task.Stop()
	calls := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, sweeper.calls.Load())

	// a second Stop is a no-op
	task.Stop()
}

func TestLedgerSweepDropsIdleIPs(t *testing.T) {
	ledger := contact.NewLedger(time.Millisecond, 3)
	ledger.Allow("1.2.3.4")

	task := NewLedgerSweep(ledger, 5*time.Millisecond)
	task.Start()
	defer task.Stop()

	assert.Eventually(t, func() bool { return ledger.Len() == 0 }, time.Second, time.Millisecond)
}

func TestLedgerSweepDefaultsInterval(t *testing.T) {
	task := NewLedgerSweep(&countingSweeper{}, 0)
	assert.Equal(t, DefaultSweepInterval, task.interval)
}
