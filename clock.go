package waitfor

import "time"

// Clock supplies the current time and delayed callbacks to a Waiter.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func())
}

// WallClock is the real time Clock.
// A Waiter with a nil Clock uses it.
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}

func (WallClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
