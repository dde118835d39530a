package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/sunnyrun/internal/application/system"
	"github.com/younwookim/sunnyrun/internal/application/world"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the delta and input of the current frame and advances
func (r *Replayer) Next() (float64, system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.DT, fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every remaining frame into w and returns the final summary
func (r *Replayer) Run(w *world.World) world.Summary {
	for {
		dt, in, ok := r.Next()
		if !ok {
			break
		}
		w.Tick(dt, in)
	}
	return w.Summary()
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version: Version,
		Level:   "test",
		Frames:  make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	return data
}
