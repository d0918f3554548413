// Package clock provides the wall clock used outside tests.
package clock

import "time"

// System reads the monotonic system clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Sleep pauses the calling goroutine for d.
func (System) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Epoch is the start time of stepped clocks.
var Epoch = time.Unix(0, 0)

// Stepped is a clock that only moves when Step is called. Sleep returns
// immediately. Sessions driven by a Stepped clock replay exactly.
type Stepped struct {
	now  time.Time
	step time.Duration
}

// NewStepped creates a stepped clock at start advancing by step.
func NewStepped(start time.Time, step time.Duration) *Stepped {
	return &Stepped{now: start, step: step}
}

// Now returns the current time.
func (c *Stepped) Now() time.Time {
	return c.now
}

// Since returns the time elapsed since t.
func (c *Stepped) Since(t time.Time) time.Duration {
	return c.now.Sub(t)
}

// Sleep does nothing.
func (c *Stepped) Sleep(time.Duration) {}

// Step advances the clock by one step.
func (c *Stepped) Step() {
	c.now = c.now.Add(c.step)
}
