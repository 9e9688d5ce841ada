package waitfor

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// Async adapts a check that reports its outcome on a channel.
// The attempt ends with the first value received, or with success if the
// channel is nil or closed without one.
func Async(fn func() <-chan error) Expectation {
	return func() error {
		errc := fn()
		if errc == nil {
			return nil
		}
		return <-errc
	}
}

// collectT is a require.TestingT that records failures for one attempt.
type collectT struct {
	errors []error
	failed bool
}

// failNow unwinds an attempt from collectT.FailNow.
type failNow struct{}

func (c *collectT) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.errors = append(c.errors, errors.Errorf(format, args...))
}

func (c *collectT) FailNow() {
	c.failed = true
	panic(failNow{})
}

func (c *collectT) run(fn func(t require.TestingT)) {
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(failNow); !ok {
				panic(v)
			}
		}
	}()
	fn(c)
}

// Assert adapts a function making testify assertions into an Expectation.
// An attempt fails with an *AssertionError if any assertion reported a
// failure, and ends early on the first failing require call.
func Assert(fn func(t require.TestingT)) Expectation {
	return func() error {
		c := &collectT{}
		c.run(fn)
		if !c.failed {
			return nil
		}
		return &AssertionError{Errors: c.errors}
	}
}

type tHelper interface {
	Helper()
}

// Eventually polls fn and fails t with the last error if the budget runs out.
func Eventually(t require.TestingT, fn Expectation, timeout, interval time.Duration) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	err := New(timeout, interval).Wait(context.Background(), fn)
	require.NoError(t, err, "expectation not met within %v", timeout)
}
