package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

func createTestGameConfig() *config.GameConfig {
	sprite := func(frames int) config.SpriteConfig {
		return config.SpriteConfig{Animations: map[string]config.AnimationConfig{"default": {Frames: frames}}}
	}
	return &config.GameConfig{
		Physics: createTestPhysicsConfig(),
		Entities: &config.EntitiesConfig{
			Enemies: map[string]config.EnemyConfig{
				"opossum": {ID: "opossum", Kind: "patrol", GridValue: 1, WidthTiles: 1, HeightTiles: 0.75, Speed: 40, Sprite: sprite(6)},
				"eagle":   {ID: "eagle", Kind: "flying", GridValue: 2, WidthTiles: 1, HeightTiles: 1, Speed: 30, Amplitude: 16, FlightPeriod: 2, Sprite: sprite(4)},
			},
			Pickups: map[string]config.PickupConfig{
				"gem": {ID: "gem", GridValue: 18, WidthTiles: 1, HeightTiles: 0.875, Sprite: sprite(5)},
			},
			Effects: map[string]config.EffectConfig{
				"enemyDeath":   {Width: 40, Height: 32, Sprite: sprite(3)},
				"itemFeedback": {Width: 40, Height: 32, Sprite: sprite(2)},
			},
		},
	}
}

func createTestCombat() (*CombatSystem, *config.GameConfig) {
	cfg := createTestGameConfig()
	return NewCombatSystem(cfg, NewPhysicsSystem(cfg.Physics, createTestStage())), cfg
}

func TestCollisionSide(t *testing.T) {
	a := entity.Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    entity.Rect
		want Side
	}{
		{"disjoint", entity.Rect{X: 20, Y: 20, W: 5, H: 5}, SideNone},
		{"disjoint on one axis", entity.Rect{X: 2, Y: 30, W: 5, H: 5}, SideNone},
		{"one unit into the bottom", entity.Rect{X: 2, Y: 9, W: 6, H: 10}, SideBottom},
		{"one unit into the top", entity.Rect{X: 2, Y: -9, W: 6, H: 10}, SideTop},
		{"one unit into the left", entity.Rect{X: -9, Y: 2, W: 10, H: 6}, SideLeft},
		{"one unit into the right", entity.Rect{X: 9, Y: 2, W: 10, H: 6}, SideRight},
		{"touching bottom edge", entity.Rect{X: 2, Y: 10, W: 6, H: 10}, SideBottom},
		{"corner tie prefers vertical", entity.Rect{X: 8, Y: 8, W: 10, H: 10}, SideBottom},
		{"top and left tie prefers top", entity.Rect{X: -8, Y: -8, W: 10, H: 10}, SideTop},
		{"left and right tie prefers left", entity.Rect{X: -5, Y: -50, W: 20, H: 100}, SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollisionSide(a, tt.b))
		})
	}
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "none", SideNone.String())
	assert.Equal(t, "bottom", SideBottom.String())
	assert.Equal(t, "top", SideTop.String())
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "right", SideRight.String())
}

func TestNewCombatSystem(t *testing.T) {
	sys, cfg := createTestCombat()

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Empty(t, sys.GetEnemies())
	assert.Empty(t, sys.GetGems())
	assert.Empty(t, sys.GetEffects())
}

func TestCombatSystem_SpawnEnemy(t *testing.T) {
	sys, cfg := createTestCombat()

	t.Run("patrol snaps onto the floor", func(t *testing.T) {
		e := sys.SpawnEnemy(cfg.Entities.Enemies["opossum"], 3, 3, 16)

		assert.Equal(t, entity.EnemyPatrol, e.Kind)
		assert.Equal(t, 48.0, e.X)
		assert.Equal(t, 12.0, e.Height)
		assert.True(t, e.OnGround)
		assert.InDelta(t, 64.0, e.Hitbox().Bottom(), 0.001)
		assert.Equal(t, 6, e.Animator.Frames)
	})

	t.Run("flying keeps its cell", func(t *testing.T) {
		e := sys.SpawnEnemy(cfg.Entities.Enemies["eagle"], 5, 1, 16)

		assert.Equal(t, entity.EnemyFlying, e.Kind)
		assert.True(t, e.Weightless)
		assert.Equal(t, 80.0, e.X)
		assert.Equal(t, 16.0, e.Y)
	})

	assert.Len(t, sys.GetEnemies(), 2)
	assert.NotEqual(t, sys.GetEnemies()[0].ID, sys.GetEnemies()[1].ID)
}

func TestCombatSystem_SpawnGem(t *testing.T) {
	sys, cfg := createTestCombat()

	g := sys.SpawnGem(cfg.Entities.Pickups["gem"], 2, 1, 16)

	assert.Equal(t, entity.Rect{X: 32, Y: 16, W: 16, H: 14}, g.Hitbox)
	assert.Equal(t, 5, g.Animator.Frames)
	assert.Len(t, sys.GetGems(), 1)
}

// placeOn positions the player so its hitbox is at (x, y)
func placeOn(p *entity.Player, x, y float64) {
	p.SetHitboxX(x)
	p.SetHitboxY(y)
}

func TestCombatSystem_ResolveContact(t *testing.T) {
	tests := []struct {
		name     string
		kind     entity.EnemyKind
		playerX  float64
		playerY  float64
		onGround bool
		rolling  bool
		want     ContactResult
	}{
		// Enemy hitbox is at (100, 100) 16x16; player hitbox is 12x22.
		{"no contact", entity.EnemyPatrol, 0, 0, false, false, ContactNone},
		{"stomp patrol from above", entity.EnemyPatrol, 102, 79, false, false, ContactStomp},
		{"stomp flying from above", entity.EnemyFlying, 102, 79, false, false, ContactStomp},
		{"landing while grounded is harmless", entity.EnemyPatrol, 102, 79, true, false, ContactNone},
		{"patrol side contact hurts", entity.EnemyPatrol, 89, 94, true, false, ContactHurt},
		{"rolling into patrol kills it", entity.EnemyPatrol, 89, 94, true, true, ContactRollKill},
		{"airborne roll still hurts", entity.EnemyPatrol, 89, 94, false, true, ContactHurt},
		{"rolling into flyer hurts", entity.EnemyFlying, 89, 94, true, true, ContactHurt},
		{"patrol from below is harmless", entity.EnemyPatrol, 102, 115, false, false, ContactNone},
		{"flyer from below hurts", entity.EnemyFlying, 102, 115, false, false, ContactHurt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, _ := createTestCombat()
			player := createTestPlayerForInput()
			placeOn(player, tt.playerX, tt.playerY)
			player.OnGround = tt.onGround
			player.VY = 50
			if tt.rolling {
				player.Action = entity.ActionRolling
			}
			enemy := entity.NewEnemy(1, tt.kind, entity.NewBody(100, 100, 16, 16, 16, 16), entity.EnemyBehavior{})

			got := sys.ResolveContact(player, enemy)

			assert.Equal(t, tt.want, got)
			if got == ContactStomp {
				assert.Equal(t, -200.0, player.VY, "stomp bounces the player")
			} else {
				assert.Equal(t, 50.0, player.VY)
			}
		})
	}
}

func TestCombatSystem_UpdateEnemies_StompRemovesEnemy(t *testing.T) {
	sys, cfg := createTestCombat()
	enemy := sys.SpawnEnemy(cfg.Entities.Enemies["opossum"], 3, 3, 16)
	enemy.Behavior.Speed = 0

	var defeated []*entity.Enemy
	sys.OnEnemyDefeated = func(e *entity.Enemy) { defeated = append(defeated, e) }
	hurt := 0
	sys.OnPlayerHurt = func() { hurt++ }

	player := createTestPlayerForInput()
	hb := enemy.Hitbox()
	placeOn(player, hb.X+1, hb.Y-21)

	sys.UpdateEnemies(player, testDT)

	assert.Empty(t, sys.GetEnemies())
	require.Len(t, defeated, 1)
	assert.Equal(t, enemy, defeated[0])
	assert.Equal(t, 0, hurt)
	assert.Equal(t, -200.0, player.VY)
	require.Len(t, sys.GetEffects(), 1)
	assert.Equal(t, entity.EffectEnemyDeath, sys.GetEffects()[0].Kind)
}

func TestCombatSystem_UpdateEnemies_SideContactHurts(t *testing.T) {
	sys, cfg := createTestCombat()
	enemy := sys.SpawnEnemy(cfg.Entities.Enemies["opossum"], 3, 3, 16)
	enemy.Behavior.Speed = 0

	hurt := 0
	sys.OnPlayerHurt = func() { hurt++ }

	player := createTestPlayerForInput()
	player.OnGround = true
	hb := enemy.Hitbox()
	placeOn(player, hb.X-11, hb.Bottom()-22)

	sys.UpdateEnemies(player, testDT)

	assert.Equal(t, 1, hurt)
	assert.Len(t, sys.GetEnemies(), 1)
}

func TestCombatSystem_UpdateEnemies_RemovalDuringScan(t *testing.T) {
	sys, cfg := createTestCombat()
	for x := 1; x <= 4; x++ {
		e := sys.SpawnEnemy(cfg.Entities.Enemies["eagle"], x*2, 0, 16)
		e.Behavior.Speed = 0
	}
	sys.OnEnemyDefeated = func(e *entity.Enemy) {}

	// A wide falling player landing on all four at once.
	player := entity.NewPlayer(entity.NewBody(0, 0, 200, 20, 200, 20), entity.PlayerTuning{})
	placeOn(player, 0, -19)

	sys.UpdateEnemies(player, testDT)

	assert.Empty(t, sys.GetEnemies())
	assert.Len(t, sys.GetEffects(), 4)
}

func TestCombatSystem_UpdateGems(t *testing.T) {
	sys, cfg := createTestCombat()
	sys.SpawnGem(cfg.Entities.Pickups["gem"], 2, 1, 16)
	far := sys.SpawnGem(cfg.Entities.Pickups["gem"], 8, 1, 16)

	var collected []*entity.Gem
	sys.OnGemCollected = func(g *entity.Gem) { collected = append(collected, g) }

	player := createTestPlayerForInput()
	placeOn(player, 36, 10)

	n := sys.UpdateGems(player, testDT)

	assert.Equal(t, 1, n)
	require.Len(t, sys.GetGems(), 1)
	assert.Equal(t, far, sys.GetGems()[0])
	assert.Len(t, collected, 1)
	require.Len(t, sys.GetEffects(), 1)
	assert.Equal(t, entity.EffectItemFeedback, sys.GetEffects()[0].Kind)
}

func TestCombatSystem_UpdateEffects_SweepsFinished(t *testing.T) {
	sys, _ := createTestCombat()
	sys.SpawnEffect(entity.EffectItemFeedback, 0, 0) // 2 frames
	sys.SpawnEffect(entity.EffectEnemyDeath, 10, 10) // 3 frames

	sys.UpdateEffects(0.1)
	assert.Len(t, sys.GetEffects(), 2)

	sys.UpdateEffects(0.1)
	require.Len(t, sys.GetEffects(), 1)
	assert.Equal(t, entity.EffectEnemyDeath, sys.GetEffects()[0].Kind)

	sys.UpdateEffects(0.1)
	assert.Empty(t, sys.GetEffects())
}

func TestCombatSystem_Clear(t *testing.T) {
	sys, cfg := createTestCombat()
	sys.SpawnEnemy(cfg.Entities.Enemies["eagle"], 1, 1, 16)
	sys.SpawnGem(cfg.Entities.Pickups["gem"], 2, 1, 16)
	sys.SpawnEffect(entity.EffectEnemyDeath, 0, 0)

	sys.Clear()

	assert.Empty(t, sys.GetEnemies())
	assert.Empty(t, sys.GetGems())
	assert.Empty(t, sys.GetEffects())
}
