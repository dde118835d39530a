package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
	"github.com/younwookim/sunnyrun/internal/infrastructure/levelstore"
	"github.com/younwookim/sunnyrun/internal/infrastructure/tiled"
)

// loadLevelFile reads a level from a .json file or imports it from a .tmx map
func loadLevelFile(path string) (*config.LevelConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		dir, file := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		return tiled.ImportLevel(os.DirFS(dir), file)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	lvl, err := config.ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = levelstore.LevelName(path)
	}
	return lvl, nil
}
