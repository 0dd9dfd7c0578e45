package service

import "time"

// Ticker abstracts a recurring tick source so the scheduler can be driven by
// a fake clock in tests.
type Ticker interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time

	// Stop turns off the ticker.
	Stop()
}

// Clock provides the current wall-clock time and ticker construction. The
// reminder scheduler only ever reads time through this interface.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// NewTicker returns a ticker that delivers ticks at the given interval.
	NewTicker(interval time.Duration) Ticker
}
