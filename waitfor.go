// Package waitfor polls a check until it passes or a time budget runs out.
package waitfor

import (
	"context"
	"time"
)

const (
	// DefaultTimeout is the total time budget used by Start and Wait.
	DefaultTimeout = 4500 * time.Millisecond
	// DefaultInterval is the delay between attempts used by Start and Wait.
	DefaultInterval = 50 * time.Millisecond
)

// Expectation is a check that returns nil once the awaited condition holds.
// Panics and runtime.Goexit inside an Expectation count as failed attempts.
type Expectation func() error

// Start polls fn with the default budget. See (*Waiter).Start.
func Start(fn Expectation) *Result {
	return defaultWaiter().Start(fn)
}

func defaultWaiter() *Waiter {
	return New(DefaultTimeout, DefaultInterval)
}

// Wait polls fn with the default budget and blocks until it settles.
func Wait(ctx context.Context, fn Expectation) error {
	return Start(fn).Wait(ctx)
}
