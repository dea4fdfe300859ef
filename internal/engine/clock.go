package engine

import "time"

// TickClock implements Clock against the wall clock. The very first call
// establishes the reference tick and returns immediately.
type TickClock struct {
	last time.Time
}

// WaitForNextTick sleeps until a full frame interval has passed since the
// previous tick and returns the measured elapsed time. With targetFPS 0 it
// never sleeps.
func (c *TickClock) WaitForNextTick(targetFPS int) time.Duration {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	if targetFPS > 0 {
		due := c.last.Add(time.Second / time.Duration(targetFPS))
		if wait := due.Sub(now); wait > 0 {
			time.Sleep(wait)
			now = time.Now()
		}
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
