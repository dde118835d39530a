// Package replay records the per-tick input of a session and plays it back.
//
// The world is deterministic for a given level, input sequence and delta
// sequence, so a replay stores exactly those.
package replay

import "github.com/younwookim/sunnyrun/internal/application/system"

// Version is written to every replay file
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	DT  float64 `json:"dt"`            // Delta time in seconds
	L   bool    `json:"l,omitempty"`   // Left
	R   bool    `json:"r,omitempty"`   // Right
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	AP  bool    `json:"ap,omitempty"`  // AttackPressed
	RP  bool    `json:"rp,omitempty"`  // RollPressed
	Rst bool    `json:"rst,omitempty"` // RestartPressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput converts one tick of input
func NewFrameInput(frame int, dt float64, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		DT:  dt,
		L:   in.Left,
		R:   in.Right,
		JP:  in.JumpPressed,
		AP:  in.AttackPressed,
		RP:  in.RollPressed,
		Rst: in.RestartPressed,
	}
}

// Input returns the recorded input state. Pause is never recorded.
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		JumpPressed:    fi.JP,
		AttackPressed:  fi.AP,
		RollPressed:    fi.RP,
		RestartPressed: fi.Rst,
	}
}
