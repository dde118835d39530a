package system

import (
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// LoadStage converts a LevelConfig into a Stage entity.
//
// Blocks are registered row-major: illusions first, then collisions
// (solids and platforms), blockers and death zones. A cell marked as an
// illusion never produces any colliding block. Platforms occupy the top
// quarter of the cell below the marked one.
func LoadStage(cfg *config.LevelConfig) *entity.Stage {
	cols, rows := cfg.Size()
	tileSize := float64(cfg.TileSize)
	if tileSize <= 0 {
		tileSize = config.DefaultTileSize
	}

	stage := &entity.Stage{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		SpawnX:   config.DefaultSpawnX,
		SpawnY:   config.DefaultSpawnY,
	}
	if cfg.PlayerSpawn != nil {
		stage.SpawnX = cfg.PlayerSpawn.X
		stage.SpawnY = cfg.PlayerSpawn.Y
	}

	cell := func(x, y int) entity.Rect {
		return entity.Rect{X: float64(x) * tileSize, Y: float64(y) * tileSize, W: tileSize, H: tileSize}
	}

	illusion := make(map[[2]int]bool)
	forEachCell(cfg.Illusions, func(x, y, v int) {
		if v == config.CellMarked {
			illusion[[2]int{x, y}] = true
			stage.Illusions = append(stage.Illusions, entity.Block{Kind: entity.BlockIllusion, Rect: cell(x, y)})
		}
	})

	forEachCell(cfg.Collisions, func(x, y, v int) {
		if illusion[[2]int{x, y}] {
			return
		}
		switch v {
		case config.CellSolid:
			stage.Solids = append(stage.Solids, entity.Block{Kind: entity.BlockSolid, Rect: cell(x, y)})
		case config.CellPlatform:
			stage.Platforms = append(stage.Platforms, entity.Block{
				Kind: entity.BlockPlatform,
				Rect: entity.Rect{X: float64(x) * tileSize, Y: float64(y+1) * tileSize, W: tileSize, H: tileSize / 4},
			})
		}
	})

	forEachCell(cfg.Blockers, func(x, y, v int) {
		if v == config.CellMarked && !illusion[[2]int{x, y}] {
			stage.Solids = append(stage.Solids, entity.Block{Kind: entity.BlockBlocker, Rect: cell(x, y)})
		}
	})

	forEachCell(cfg.Deaths, func(x, y, v int) {
		if v == config.CellMarked && !illusion[[2]int{x, y}] {
			stage.Deaths = append(stage.Deaths, entity.Block{Kind: entity.BlockDeath, Rect: cell(x, y)})
		}
	})

	return stage
}

func forEachCell(grid [][]int, fn func(x, y, v int)) {
	for y, row := range grid {
		for x, v := range row {
			if v != config.CellEmpty {
				fn(x, y, v)
			}
		}
	}
}
