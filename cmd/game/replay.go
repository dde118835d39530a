package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/younwookim/sunnyrun/internal/application/replay"
	"github.com/younwookim/sunnyrun/internal/application/world"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// runReplay plays a recorded session headlessly and writes the final world
// summary to out, as text or as JSON.
func runReplay(cfg *config.GameConfig, level *config.LevelConfig, filename string, asJSON bool, out io.Writer) (world.Summary, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return world.Summary{}, err
	}
	if data.Level != "" && data.Level != level.ID {
		log.Printf("Replay was recorded on level %q, playing it on %q", data.Level, level.ID)
	}

	w, err := world.New(cfg, level)
	if err != nil {
		return world.Summary{}, err
	}

	replayer := replay.NewReplayer(*data)
	summary := replayer.Run(w)
	log.Printf("Replayed %d frames", replayer.TotalFrames())

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return summary, fmt.Errorf("failed to encode summary: %w", err)
		}
		return summary, nil
	}
	if _, err := fmt.Fprintln(out, summary); err != nil {
		return summary, err
	}
	return summary, nil
}
