package waitfor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrGoexit is the failure recorded for an attempt that called
// runtime.Goexit, for example through (*testing.T).FailNow.
var ErrGoexit = errors.New("expectation called runtime.Goexit")

type abortError struct {
	error
}

// Abort returns an error that makes the poll settle immediately with err,
// regardless of the remaining budget. It is still recognized when wrapped.
func Abort(err error) error {
	return abortError{err}
}

// PanicError records a panic with a non-error value inside an Expectation.
// A panic with an error value is reported as that error.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("expectation panicked: %v", e.Value)
}

func panicError(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// AssertionError holds the failures reported by the assertions of one
// attempt of an Assert expectation.
type AssertionError struct {
	Errors []error
}

func (e *AssertionError) Error() string {
	if len(e.Errors) == 0 {
		return "assertion failed"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
