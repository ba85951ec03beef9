// Package animation provides the small timing primitives strut needs:
// an injectable clock and a per-identity smoothed boolean used for
// hover transitions such as the scrollbar widening on interaction.
package animation

import "time"

// Clock is the time source for frame timing. Hosts read it through
// Now; swapping in a ManualClock with SetClock makes dt measurement
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock installs c as the active clock and returns the one it
// replaced, so a test can restore it with defer.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the active clock.
func Now() time.Time { return clock.Now() }

// ManualClock is a Clock whose time only moves when Advance is called.
type ManualClock struct {
	Current time.Time
}

// Now returns the manually controlled time.
func (c *ManualClock) Now() time.Time { return c.Current }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.Current = c.Current.Add(d) }
