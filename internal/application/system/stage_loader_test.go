package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

func createTestLevel() *config.LevelConfig {
	lvl := &config.LevelConfig{
		TileSize:    16,
		PlayerSpawn: &config.PositionConfig{X: 20, Y: 4},
		Collisions: [][]int{
			{0, 0, 2, 0},
			{0, 0, 0, 0},
			{1, 1, 1, 1},
		},
		Blockers: [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		},
		Deaths: [][]int{
			{0, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		},
		Illusions: [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 1, 0},
		},
	}
	lvl.ApplyDefaults()
	return lvl
}

func TestLoadStage(t *testing.T) {
	t.Run("builds blocks from grids", func(t *testing.T) {
		stage := LoadStage(createTestLevel())

		require.NotNil(t, stage)
		assert.Equal(t, 4, stage.Cols)
		assert.Equal(t, 3, stage.Rows)
		assert.Equal(t, 16.0, stage.TileSize)
		assert.Equal(t, 20.0, stage.SpawnX)
		assert.Equal(t, 4.0, stage.SpawnY)
		assert.Equal(t, entity.Rect{W: 64, H: 48}, stage.Bounds())

		// Three floor solids (the illusion removes one) followed by the blocker.
		require.Len(t, stage.Solids, 4)
		assert.Equal(t, entity.Block{Kind: entity.BlockSolid, Rect: entity.Rect{X: 0, Y: 32, W: 16, H: 16}}, stage.Solids[0])
		assert.Equal(t, entity.Block{Kind: entity.BlockSolid, Rect: entity.Rect{X: 16, Y: 32, W: 16, H: 16}}, stage.Solids[1])
		assert.Equal(t, entity.Block{Kind: entity.BlockSolid, Rect: entity.Rect{X: 48, Y: 32, W: 16, H: 16}}, stage.Solids[2])
		assert.Equal(t, entity.BlockBlocker, stage.Solids[3].Kind)
		assert.Equal(t, 48.0, stage.Solids[3].X)
		assert.Equal(t, 16.0, stage.Solids[3].Y)
	})

	t.Run("platform sits in the top quarter of the cell below", func(t *testing.T) {
		stage := LoadStage(createTestLevel())

		require.Len(t, stage.Platforms, 1)
		assert.Equal(t, entity.Rect{X: 32, Y: 16, W: 16, H: 4}, stage.Platforms[0].Rect)
	})

	t.Run("deaths and illusions", func(t *testing.T) {
		stage := LoadStage(createTestLevel())

		require.Len(t, stage.Deaths, 1)
		assert.Equal(t, entity.Rect{X: 16, Y: 16, W: 16, H: 16}, stage.Deaths[0].Rect)
		require.Len(t, stage.Illusions, 1)
		assert.Equal(t, entity.Rect{X: 32, Y: 32, W: 16, H: 16}, stage.Illusions[0].Rect)
	})

	t.Run("defaults tile size and spawn", func(t *testing.T) {
		stage := LoadStage(&config.LevelConfig{Collisions: [][]int{{1}}})

		assert.Equal(t, float64(config.DefaultTileSize), stage.TileSize)
		assert.Equal(t, float64(config.DefaultSpawnX), stage.SpawnX)
		assert.Equal(t, float64(config.DefaultSpawnY), stage.SpawnY)
		assert.Len(t, stage.Solids, 1)
	})
}

func TestLoadStage_DemoLevel(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	lvl, err := loader.LoadLevel("demo")
	require.NoError(t, err)

	stage := LoadStage(lvl)

	assert.NotEmpty(t, stage.Solids)
	assert.NotEmpty(t, stage.Platforms)
	assert.NotEmpty(t, stage.Deaths)
	assert.NotEmpty(t, stage.Illusions)
	for _, b := range stage.Illusions {
		_, blocked := stage.SolidAt(b.CenterX(), b.CenterY())
		assert.False(t, blocked, "illusion at %v must not collide", b.Rect)
	}
}
