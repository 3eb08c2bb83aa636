package core

import "time"

// MaxFrameTime caps the delta handed to games after a stall
// (suspended terminal, slow SSH link).
const MaxFrameTime = 250 * time.Millisecond

// FrameClock converts tick timestamps into elapsed-time deltas.
// The caller supplies the timestamps so simulations stay deterministic.
type FrameClock struct {
	last    time.Time
	started bool
	max     time.Duration
}

// NewFrameClock creates a clock that clamps deltas to max.
// A non-positive max selects MaxFrameTime.
func NewFrameClock(max time.Duration) *FrameClock {
	if max <= 0 {
		max = MaxFrameTime
	}
	return &FrameClock{max: max}
}

// Tick returns the time elapsed since the previous tick.
// The first tick returns zero; backwards jumps return zero.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.max {
		return c.max
	}
	return dt
}

// Reset makes the next tick behave like the first one.
func (c *FrameClock) Reset() {
	c.started = false
}

// FPSCounter measures how many updates happen per second.
type FPSCounter struct {
	interval time.Duration
	last     time.Time
	started  bool
	frames   int
	fps      int
}

// NewFPSCounter creates a counter that republishes its value every interval.
// A non-positive interval selects one second.
func NewFPSCounter(interval time.Duration) *FPSCounter {
	if interval <= 0 {
		interval = time.Second
	}
	return &FPSCounter{interval: interval}
}

// OnUpdate registers one update at now.
func (c *FPSCounter) OnUpdate(now time.Time) {
	if !c.started {
		c.started = true
		c.last = now
		return
	}
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed >= c.interval {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.last = now
	}
}

// FPS returns the most recently published rate.
func (c *FPSCounter) FPS() int {
	return c.fps
}
