// Package tiled imports levels drawn in the Tiled map editor.
//
// Tile layers are matched to level grids by name (collisions, gems,
// enemies, blockers, deaths, illusions). A cell's value is the local tile
// id plus one, so the first tile of the tileset paints a 1. An object group
// named PlayerSpawn sets the spawn point from its first object.
package tiled

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// SpawnGroup is the object group holding the player spawn point
const SpawnGroup = "PlayerSpawn"

// ImportLevel loads a TMX file from fsys and converts it to a level
func ImportLevel(fsys fs.FS, tmxPath string) (*config.LevelConfig, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &config.LevelConfig{
		ID:       strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		TileSize: m.TileWidth,
	}

	for _, layer := range m.Layers {
		name := strings.ToLower(layer.Name)
		if !isGrid(name) {
			continue
		}
		if len(layer.Tiles) < m.Width*m.Height {
			return nil, fmt.Errorf("%w: layer %q in %s has %d tiles, want %d (infinite maps are not supported)",
				config.ErrInvalidLevel, layer.Name, tmxPath, len(layer.Tiles), m.Width*m.Height)
		}

		grid := make([][]int, m.Height)
		for y := range grid {
			grid[y] = make([]int, m.Width)
			for x := range grid[y] {
				tile := layer.Tiles[y*m.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				grid[y][x] = int(tile.ID) + 1
			}
		}
		lvl.SetGrid(name, grid)
	}

	if lvl.Collisions == nil {
		return nil, fmt.Errorf("%w: %s has no %q layer", config.ErrInvalidLevel, tmxPath, config.GridCollisions)
	}

	for _, og := range m.ObjectGroups {
		if og.Name != SpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		lvl.PlayerSpawn = &config.PositionConfig{X: o.X, Y: o.Y}
		break
	}

	lvl.ApplyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("import %s: %w", tmxPath, err)
	}
	return lvl, nil
}

// ImportAll imports every .tmx file in dir, sorted by name
func ImportAll(fsys fs.FS, dir string) ([]*config.LevelConfig, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	levels := make([]*config.LevelConfig, 0, len(matches))
	for _, p := range matches {
		lvl, err := ImportLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func isGrid(name string) bool {
	for _, g := range config.GridNames {
		if g == name {
			return true
		}
	}
	return false
}
