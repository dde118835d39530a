package entity

// AnimationState is a named sprite strip of the player
type AnimationState int

const (
	AnimIdle AnimationState = iota
	AnimRun
	AnimJump
	AnimLand
	AnimAttack
	AnimRoll
)

// String returns the animation name as used in configs
func (s AnimationState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimLand:
		return "land"
	case AnimAttack:
		return "attack"
	case AnimRoll:
		return "roll"
	default:
		return "unknown"
	}
}

// ParseAnimationState maps a config name back to its state.
func ParseAnimationState(name string) (AnimationState, bool) {
	for s := AnimIdle; s <= AnimRoll; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return AnimIdle, false
}

// Animator steps through the frames of a looping strip at a fixed interval.
type Animator struct {
	Frames   int
	Interval float64 // seconds per frame
	Frame    int
	Elapsed  float64
}

// NewAnimator creates an animator positioned on frame 0. A strip has at
// least one frame, so every animator with an interval completes cycles.
func NewAnimator(frames int, interval float64) Animator {
	return Animator{Frames: max(frames, 1), Interval: interval}
}

// Reset switches to a strip with the given frame count and rewinds it
func (a *Animator) Reset(frames int) {
	a.Frames = max(frames, 1)
	a.Frame = 0
	a.Elapsed = 0
}

// Advance moves at most one frame forward and reports whether the strip
// wrapped back to frame 0, i.e. one full cycle was completed.
func (a *Animator) Advance(dt float64) bool {
	if a.Frames <= 0 || a.Interval <= 0 {
		return false
	}
	a.Elapsed += dt
	if a.Elapsed < a.Interval {
		return false
	}
	a.Elapsed -= a.Interval
	a.Frame++
	if a.Frame >= a.Frames {
		a.Frame = 0
		return true
	}
	return false
}
