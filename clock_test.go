package waitfor

import (
	"sync"
	"testing"
	"time"
)

type pendingFunc struct {
	due time.Time
	f   func()
}

// fakeClock only moves when told to. Scheduled callbacks run synchronously
// from Step.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []pendingFunc
	delays  []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delays = append(c.delays, d)
	c.pending = append(c.pending, pendingFunc{due: c.now.Add(d), f: f})
}

// Advance moves the clock forward without running anything.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Step runs the oldest scheduled callback at its due time.
// It reports false if nothing was scheduled.
func (c *fakeClock) Step() bool {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return false
	}
	p := c.pending[0]
	c.pending = c.pending[1:]
	if p.due.After(c.now) {
		c.now = p.due
	}
	c.mu.Unlock()

	p.f()
	return true
}

// Run steps until nothing is scheduled.
func (c *fakeClock) Run(t *testing.T) {
	t.Helper()
	for i := 0; c.Step(); i++ {
		if i > 10000 {
			t.Fatal("fake clock still has callbacks after 10000 steps")
		}
	}
}

func (c *fakeClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}
