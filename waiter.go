package waitfor

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Waiter holds the time budget for polling an Expectation.
// Use New instead of creating this object directly.
type Waiter struct {
	// Timeout bounds the total time spent polling. It is only checked after
	// a failed attempt, so a slow attempt can overrun it and a late success
	// still counts.
	Timeout time.Duration
	// Interval is the delay between a failed attempt and the next one.
	Interval time.Duration

	// Clock defaults to WallClock.
	Clock Clock
	// Logf, if set, is called for every retried failure and for the final
	// failure when the budget runs out.
	Logf func(format string, args ...interface{})
}

// New creates a Waiter that retries every interval until timeout has passed.
func New(timeout, interval time.Duration) *Waiter {
	return &Waiter{
		Timeout:  timeout,
		Interval: interval,
	}
}

// Start begins polling fn and returns without waiting for the first attempt.
//
// The Result succeeds as soon as an attempt returns nil. When an attempt fails
// and at least Timeout has passed since Start was called, the Result fails
// with the error from that attempt, unwrapped.
func (w *Waiter) Start(fn Expectation) *Result {
	var (
		timeout  = w.Timeout
		interval = w.Interval
		clock    = w.Clock
		logf     = w.Logf
	)
	if clock == nil {
		clock = WallClock{}
	}

	res := newResult()
	start := clock.Now()

	var run func()
	run = func() {
		n := res.attempts.Add(1)

		err := attempt(fn)
		if err == nil {
			res.settle(nil)
			return
		}
		var ae abortError
		if errors.As(err, &ae) {
			res.settle(ae.error)
			return
		}

		elapsed := clock.Now().Sub(start)
		if elapsed >= timeout {
			if logf != nil {
				logf("waitfor: giving up after %d attempts (%v): %v", n, elapsed, err)
			}
			res.settle(err)
			return
		}
		if logf != nil {
			logf("waitfor: attempt %d failed after %v: %v; retrying in %v", n, elapsed, err, interval)
		}
		clock.AfterFunc(interval, run)
	}
	clock.AfterFunc(0, run)

	return res
}

// Wait polls fn and blocks until it settles or ctx ends.
func (w *Waiter) Wait(ctx context.Context, fn Expectation) error {
	return w.Start(fn).Wait(ctx)
}

// attempt runs fn in its own goroutine so that a panic or runtime.Goexit
// inside it is reported as an error instead of ending the poll.
func attempt(fn Expectation) error {
	errc := make(chan error, 1)
	go func() {
		returned := false
		var err error
		defer func() {
			if !returned {
				if v := recover(); v != nil {
					err = panicError(v)
				} else {
					err = ErrGoexit
				}
			}
			errc <- err
		}()
		err = fn()
		returned = true
	}()
	return <-errc
}
