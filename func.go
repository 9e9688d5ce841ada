package waitfor

import "context"

// Func returns a function that polls fn with w and returns the value from the
// first successful attempt.
func Func[T any](fn func() (T, error), w *Waiter) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var v T
		err := w.Wait(ctx, func() error {
			got, err := fn()
			if err != nil {
				return err
			}
			v = got
			return nil
		})
		if err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}
