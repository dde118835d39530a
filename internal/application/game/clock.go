package game

import "time"

// Defaults for FrameClock
const (
	DefaultMaxDelta        = 0.1
	DefaultResumeThreshold = 0.25
)

// FrameClock measures wall-clock time between ticks.
//
// Deltas are clamped to MaxDelta. A gap longer than ResumeThreshold is
// taken as a resume after the window was hidden or the process suspended:
// the clock restarts from now and that tick gets a zero delta.
type FrameClock struct {
	MaxDelta        float64
	ResumeThreshold float64

	now     func() time.Time
	last    time.Time
	started bool
}

// NewFrameClock creates a clock reading time.Now
func NewFrameClock(maxDelta, resumeThreshold float64) *FrameClock {
	return NewFrameClockWithSource(maxDelta, resumeThreshold, time.Now)
}

// NewFrameClockWithSource creates a clock with its own time source
func NewFrameClockWithSource(maxDelta, resumeThreshold float64, now func() time.Time) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	if resumeThreshold <= 0 {
		resumeThreshold = DefaultResumeThreshold
	}
	return &FrameClock{MaxDelta: maxDelta, ResumeThreshold: resumeThreshold, now: now}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first Tick after creation or Reset returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	switch {
	case dt <= 0:
		return 0
	case dt > c.ResumeThreshold:
		return 0
	case dt > c.MaxDelta:
		return c.MaxDelta
	}
	return dt
}

// Reset makes the next Tick start over
func (c *FrameClock) Reset() {
	c.started = false
}
