package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 4x3 tiles of 16px: a floor on the bottom row and a death zone in the middle
	return &Stage{
		Cols:     4,
		Rows:     3,
		TileSize: 16,
		Solids: []Block{
			{Kind: BlockSolid, Rect: Rect{X: 0, Y: 32, W: 16, H: 16}},
			{Kind: BlockSolid, Rect: Rect{X: 16, Y: 32, W: 16, H: 16}},
			{Kind: BlockBlocker, Rect: Rect{X: 48, Y: 32, W: 16, H: 16}},
		},
		Deaths: []Block{
			{Kind: BlockDeath, Rect: Rect{X: 32, Y: 40, W: 16, H: 8}},
		},
		SpawnX: 8,
		SpawnY: 8,
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, true},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, true},
		{"disjoint horizontally", Rect{X: 10.5, Y: 0, W: 5, H: 5}, false},
		{"disjoint vertically", Rect{X: 0, Y: -6, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 4, Y: 6, W: 10, H: 20}

	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
	assert.Equal(t, 9.0, r.CenterX())
	assert.Equal(t, 16.0, r.CenterY())
	assert.True(t, r.Contains(4, 26))
	assert.False(t, r.Contains(3.9, 10))
}

func TestBlockKind_String(t *testing.T) {
	assert.Equal(t, "solid", BlockSolid.String())
	assert.Equal(t, "blocker", BlockBlocker.String())
	assert.Equal(t, "platform", BlockPlatform.String())
	assert.Equal(t, "death", BlockDeath.String())
	assert.Equal(t, "illusion", BlockIllusion.String())
	assert.Equal(t, "unknown", BlockKind(99).String())
}

func TestBlock_Catches(t *testing.T) {
	platform := Block{Kind: BlockPlatform, Rect: Rect{X: 0, Y: 100, W: 32, H: 4}}
	dt := 1.0 / 60.0

	tests := []struct {
		name   string
		hitbox Rect
		vy     float64
		want   bool
	}{
		{"descending onto top", Rect{X: 8, Y: 80, W: 10, H: 19}, 120, true},
		{"resting on top", Rect{X: 8, Y: 81 - 0.0001, W: 10, H: 19}, 10, true},
		{"ascending through", Rect{X: 8, Y: 85, W: 10, H: 19}, -200, false},
		{"not moving", Rect{X: 8, Y: 80, W: 10, H: 19}, 0, false},
		{"too high to reach this tick", Rect{X: 8, Y: 40, W: 10, H: 19}, 60, false},
		{"already below band", Rect{X: 8, Y: 90, W: 10, H: 19}, 60, false},
		{"beside platform", Rect{X: 40, Y: 80, W: 10, H: 19}, 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Catches(tt.hitbox, tt.vy, dt))
		})
	}
}

func TestStage_Bounds(t *testing.T) {
	stage := createTestStage()

	assert.Equal(t, Rect{X: 0, Y: 0, W: 64, H: 48}, stage.Bounds())
}

func TestStage_SolidAt(t *testing.T) {
	stage := createTestStage()

	b, ok := stage.SolidAt(20, 32)
	assert.True(t, ok)
	assert.Equal(t, 16.0, b.X)

	b, ok = stage.SolidAt(50, 40)
	assert.True(t, ok)
	assert.Equal(t, BlockBlocker, b.Kind)

	_, ok = stage.SolidAt(40, 20)
	assert.False(t, ok)
}

func TestStage_TouchesDeath(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.TouchesDeath(Rect{X: 30, Y: 30, W: 4, H: 10}))
	assert.False(t, stage.TouchesDeath(Rect{X: 30, Y: 20, W: 4, H: 10}))
}
