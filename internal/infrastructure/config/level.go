package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned for level data that cannot be built into a stage
var ErrInvalidLevel = errors.New("invalid level")

// Grid values understood by the stage builder
const (
	CellEmpty    = 0
	CellSolid    = 1
	CellPlatform = 2
	CellMarked   = 1 // blockers, deaths and illusions
)

// Grid names as they appear in level files and save requests
const (
	GridCollisions = "collisions"
	GridGems       = "gems"
	GridEnemies    = "enemies"
	GridBlockers   = "blockers"
	GridDeaths     = "deaths"
	GridIllusions  = "illusions"
)

// GridNames lists every grid a complete level carries
var GridNames = []string{GridCollisions, GridGems, GridEnemies, GridBlockers, GridDeaths, GridIllusions}

// Defaults applied to levels that omit them
const (
	DefaultTileSize = 16
	DefaultSpawnX   = 100
	DefaultSpawnY   = 100
)

// LevelConfig is the root of a level JSON file. The six grids are
// row-major tile layers painted by the level editor.
type LevelConfig struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	TileSize    int             `json:"tileSize,omitempty"`
	PlayerSpawn *PositionConfig `json:"playerSpawn,omitempty"`

	Collisions [][]int `json:"collisions"`
	Gems       [][]int `json:"gems"`
	Enemies    [][]int `json:"enemies"`
	Blockers   [][]int `json:"blockers"`
	Deaths     [][]int `json:"deaths"`
	Illusions  [][]int `json:"illusions"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ParseLevel decodes, defaults and validates level JSON
func ParseLevel(data []byte) (*LevelConfig, error) {
	var lvl LevelConfig
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	lvl.ApplyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Size returns the level size in tiles, taken from the collisions grid
func (l *LevelConfig) Size() (cols, rows int) {
	rows = len(l.Collisions)
	if rows > 0 {
		cols = len(l.Collisions[0])
	}
	return cols, rows
}

// Grid returns the named grid, nil for an unknown name
func (l *LevelConfig) Grid(name string) [][]int {
	switch name {
	case GridCollisions:
		return l.Collisions
	case GridGems:
		return l.Gems
	case GridEnemies:
		return l.Enemies
	case GridBlockers:
		return l.Blockers
	case GridDeaths:
		return l.Deaths
	case GridIllusions:
		return l.Illusions
	}
	return nil
}

// SetGrid replaces the named grid. Unknown names are ignored.
func (l *LevelConfig) SetGrid(name string, grid [][]int) {
	switch name {
	case GridCollisions:
		l.Collisions = grid
	case GridGems:
		l.Gems = grid
	case GridEnemies:
		l.Enemies = grid
	case GridBlockers:
		l.Blockers = grid
	case GridDeaths:
		l.Deaths = grid
	case GridIllusions:
		l.Illusions = grid
	}
}

// ApplyDefaults fills the tile size, spawn point and any missing optional
// grid (as all zeros, shaped like the collisions grid).
func (l *LevelConfig) ApplyDefaults() {
	if l.TileSize <= 0 {
		l.TileSize = DefaultTileSize
	}
	if l.PlayerSpawn == nil {
		l.PlayerSpawn = &PositionConfig{X: DefaultSpawnX, Y: DefaultSpawnY}
	}

	cols, rows := l.Size()
	for _, name := range GridNames[1:] {
		if l.Grid(name) == nil {
			l.SetGrid(name, emptyGrid(cols, rows))
		}
	}
}

// Validate checks that the collisions grid is a non-empty rectangle and
// every other grid has the same shape.
func (l *LevelConfig) Validate() error {
	cols, rows := l.Size()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: collisions grid is empty", ErrInvalidLevel)
	}

	for _, name := range GridNames {
		grid := l.Grid(name)
		if len(grid) != rows {
			return fmt.Errorf("%w: %s grid has %d rows, want %d", ErrInvalidLevel, name, len(grid), rows)
		}
		for y, row := range grid {
			if len(row) != cols {
				return fmt.Errorf("%w: %s grid row %d has %d cells, want %d", ErrInvalidLevel, name, y, len(row), cols)
			}
		}
	}
	return nil
}

func emptyGrid(cols, rows int) [][]int {
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
	}
	return grid
}
