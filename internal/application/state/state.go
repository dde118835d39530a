// Package state holds the play state of a level and its transitions.
package state

// GameState is what the playing scene is doing with the world
type GameState int

const (
	// StatePlaying advances the world every tick
	StatePlaying GameState = iota
	// StatePaused freezes the world until pause is pressed again
	StatePaused
	// StageClear shows the win overlay. The world still ticks so a
	// restart press reaches it.
	StateStageClear
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Ticks reports whether the world advances in this state
func (s GameState) Ticks() bool {
	return s != StatePaused
}

// TogglePause returns the state after a pause press. A cleared stage
// cannot be paused.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}

// Settle returns the state after a world tick, given whether the level
// is won.
func (s GameState) Settle(won bool) GameState {
	if s == StatePaused {
		return s
	}
	if won {
		return StateStageClear
	}
	return StatePlaying
}
