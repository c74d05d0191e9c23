package core

import "time"

// Clock turns wall-clock frame intervals into simulation deltas. The first
// tick reports the nominal step so a freshly started session never sees a
// zero or huge delta.
type Clock struct {
	step    time.Duration
	maxStep time.Duration
	last    time.Time
	now     func() time.Time
}

// NewClock constructs a Clock targeting the given ticks per second.
func NewClock(tps int) *Clock {
	c := &Clock{now: time.Now}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the nominal tick rate. It is safe to call from the main loop.
func (c *Clock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.step = time.Second / time.Duration(tps)
	c.maxStep = 6 * c.step
}

// Tick reports the seconds elapsed since the previous tick, clamped to a few
// nominal steps so a stalled window does not launch the character through
// the floor.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.step.Seconds()
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.maxStep {
		delta = c.maxStep
	}
	return delta.Seconds()
}
