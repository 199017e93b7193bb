package app

import (
	"time"
)

// FPSLimiter paces the loop to a target frame rate.
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due at the given limit. A limit of 0
// or less disables pacing. Sleeps for most of the interval, then spins for
// the last 200µs for precision on high caps.
func (f *FPSLimiter) Wait(limit int) {
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch so we don't try to catch up with a burst of frames
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// FrameCounter reports frames per second once per second.
type FrameCounter struct {
	frames int
	since  time.Time
	last   int
}

// Tick counts one frame at now. It returns the frame count of the window
// that just closed and true once a full second has elapsed.
func (c *FrameCounter) Tick(now time.Time) (int, bool) {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	if now.Sub(c.since) < time.Second {
		return 0, false
	}
	c.last = c.frames
	c.frames = 0
	c.since = now
	return c.last, true
}

// FPS returns the last completed measurement.
func (c *FrameCounter) FPS() int { return c.last }
