package core

import "time"

// Cadence reports when a fixed interval has elapsed, e.g. to regenerate a
// body plan every few seconds in a viewer.
type Cadence struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewCadence constructs a Cadence firing every interval. Non-positive
// intervals fall back to one second.
func NewCadence(interval time.Duration) *Cadence {
	c := &Cadence{now: time.Now}
	c.SetInterval(interval)
	return c
}

// SetInterval changes the firing interval. It is safe to call from the main loop.
func (c *Cadence) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	c.interval = interval
}

// Interval returns the configured interval.
func (c *Cadence) Interval() time.Duration { return c.interval }

// Reset drops any accumulated time.
func (c *Cadence) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}

// Due reports whether a full interval has passed since the last firing.
func (c *Cadence) Due() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.interval {
		c.accumulator -= c.interval
		return true
	}
	return false
}
