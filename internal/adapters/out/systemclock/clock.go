// Package systemclock implements the clock port on the system wall clock.
package systemclock

import (
	"sync/atomic"
	"time"
)

// Clock returns the current time in Unix milliseconds. The wall clock can
// step backwards (NTP), so Clock remembers the last value handed out and
// never returns a smaller one. Safe for concurrent use.
type Clock struct {
	last atomic.Uint64
}

// New creates a system clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current Unix time in milliseconds, clamped to be
// monotonically non-decreasing.
func (c *Clock) Now() uint64 {
	now := uint64(time.Now().UnixMilli())

	for {
		last := c.last.Load()
		if now <= last {
			return last
		}
		if c.last.CompareAndSwap(last, now) {
			return now
		}
	}
}
