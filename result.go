package waitfor

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Result is the outcome of a poll started by (*Waiter).Start.
// It settles exactly once.
type Result struct {
	done     chan struct{}
	once     sync.Once
	err      error
	attempts atomic.Int64
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

func (r *Result) settle(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Done is closed once the poll has settled.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Err returns the error the poll settled with.
// It is nil while the poll is pending and after a successful attempt.
func (r *Result) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Attempts returns how many attempts have started so far.
func (r *Result) Attempts() int {
	return int(r.attempts.Load())
}

// Wait blocks until the poll settles and returns its error.
// If ctx ends first, Wait returns early with a non-nil error; the poll itself
// keeps running until it settles.
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "stopped waiting for expectation after %d attempts", r.Attempts())
	}
}
