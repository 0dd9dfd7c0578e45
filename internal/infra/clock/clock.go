// Package clock provides the wall-clock implementation of the scheduler's
// time source.
package clock

import (
	"time"

	"medi/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system wall clock.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(interval time.Duration) service.Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t systemTicker) Stop() {
	t.ticker.Stop()
}
