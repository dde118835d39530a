// Package world holds the simulation state of one running level.
//
// A World owns the stage, the player, the enemies, gems and effects, the
// hearts and the camera. Tick advances all of it by one frame.
package world

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/sunnyrun/internal/application/system"
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// DefaultHearts is used when the combat config does not set a heart count
const DefaultHearts = 3

// World is the aggregate of everything that changes during play.
type World struct {
	config *config.GameConfig
	level  *config.LevelConfig

	stage   *entity.Stage
	physics *system.PhysicsSystem
	combat  *system.CombatSystem
	input   *system.InputSystem
	camera  *system.Camera

	enemyTypes  map[int]config.EnemyConfig
	pickupTypes map[int]config.PickupConfig

	player    *entity.Player
	hearts    entity.Hearts
	gemCount  int
	totalGems int
	won       bool
	defeated  int
	resets    int
	time      float64

	// Set by contacts during a tick, applied once the tick is over so no
	// entity list is rebuilt while it is being scanned.
	pendingReset bool

	// Edge-triggered presses seen on ticks that did not advance, replayed
	// on the next tick that does.
	latched system.InputState

	// Event callbacks
	OnReset func()
	OnWin   func()
}

// New builds a world for the given level
func New(cfg *config.GameConfig, level *config.LevelConfig) (*World, error) {
	if cfg == nil || cfg.Physics == nil || cfg.Entities == nil {
		return nil, errors.New("world: incomplete game config")
	}

	w := &World{
		config:      cfg,
		input:       system.NewInputSystem(),
		enemyTypes:  make(map[int]config.EnemyConfig),
		pickupTypes: make(map[int]config.PickupConfig),
	}
	for _, e := range cfg.Entities.Enemies {
		w.enemyTypes[e.GridValue] = e
	}
	for _, p := range cfg.Entities.Pickups {
		w.pickupTypes[p.GridValue] = p
	}

	display := cfg.Physics.Display
	w.camera = system.NewCamera(cfg.Physics.Camera, float64(display.ScreenWidth), float64(display.ScreenHeight))

	w.physics = system.NewPhysicsSystem(cfg.Physics, nil)
	w.combat = system.NewCombatSystem(cfg, w.physics)
	w.combat.OnPlayerHurt = w.hurt
	w.combat.OnEnemyDefeated = func(*entity.Enemy) { w.defeated++ }

	hearts := cfg.Physics.Combat.Hearts
	if hearts <= 0 {
		hearts = DefaultHearts
	}
	w.hearts = entity.NewHearts(hearts)

	if err := w.Load(level); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the current level and restarts it from the spawn point.
// On error the previous level is kept.
func (w *World) Load(level *config.LevelConfig) error {
	if level == nil {
		return fmt.Errorf("load level: %w", config.ErrInvalidLevel)
	}
	level.ApplyDefaults()
	if err := level.Validate(); err != nil {
		return fmt.Errorf("load level %q: %w", level.ID, err)
	}

	w.level = level
	w.stage = system.LoadStage(level)
	w.physics.SetStage(w.stage)
	w.camera.SetBounds(w.stage.Bounds(), w.stage.TileSize)
	w.restart()
	return nil
}

// Tick advances the simulation by dt seconds. A non-positive dt does not
// advance anything but keeps the key presses of that tick for the next one.
// A restart request resets the level instead of advancing it, and a won
// level stays frozen until then.
func (w *World) Tick(dt float64, in system.InputState) {
	if dt <= 0 {
		w.latch(in)
		return
	}
	in = w.takeLatched(in)
	if in.RestartPressed {
		w.Reset()
		return
	}
	if w.won {
		return
	}
	w.time += dt

	p := w.player
	p.UpdateInvincibility(w.time)
	w.input.UpdatePlayer(p, in)
	w.physics.Step(&p.Body, dt)
	p.UpdateFacing()
	p.UpdateAnimation(dt)

	w.combat.UpdateEnemies(p, dt)
	if n := w.combat.UpdateGems(p, dt); n > 0 {
		w.gemCount += n
		if len(w.combat.GetGems()) == 0 {
			w.won = true
			log.Printf("[world] level %q cleared: %d gems in %.2fs", w.level.ID, w.gemCount, w.time)
			if w.OnWin != nil {
				w.OnWin()
			}
		}
	}
	w.combat.UpdateEffects(dt)

	if w.stage.TouchesDeath(p.Hitbox()) || p.Hitbox().Y > w.stage.Bounds().Bottom() {
		w.hearts.DepleteAll()
		w.pendingReset = true
	}

	if w.pendingReset {
		w.Reset()
		return
	}
	w.camera.Update(p.Bounds())
}

// Reset refills the hearts and respawns the player, enemies and gems
func (w *World) Reset() {
	w.resets++
	w.restart()
	if w.OnReset != nil {
		w.OnReset()
	}
}

// latch keeps the edge-triggered presses of in. Held keys are not kept.
func (w *World) latch(in system.InputState) {
	w.latched.JumpPressed = w.latched.JumpPressed || in.JumpPressed
	w.latched.AttackPressed = w.latched.AttackPressed || in.AttackPressed
	w.latched.RollPressed = w.latched.RollPressed || in.RollPressed
	w.latched.RestartPressed = w.latched.RestartPressed || in.RestartPressed
}

// takeLatched merges the latched presses into in and clears them
func (w *World) takeLatched(in system.InputState) system.InputState {
	in.JumpPressed = in.JumpPressed || w.latched.JumpPressed
	in.AttackPressed = in.AttackPressed || w.latched.AttackPressed
	in.RollPressed = in.RollPressed || w.latched.RollPressed
	in.RestartPressed = in.RestartPressed || w.latched.RestartPressed
	w.latched = system.InputState{}
	return in
}

func (w *World) restart() {
	w.pendingReset = false
	w.latched = system.InputState{}
	w.hearts.Refill()
	w.gemCount = 0
	w.won = false

	w.player = w.newPlayer()
	w.physics.SnapToGround(&w.player.Body)
	w.spawnEntities()
	w.camera.SnapTo(w.player.Bounds())
}

// hurt depletes one heart and grants invincibility. With no heart left the
// level restarts, invincible or not.
func (w *World) hurt() {
	switch {
	case !w.player.Invincible && w.hearts.Full() > 0:
		w.hearts.Deplete()
		w.player.SetInvincible(w.time)
	case w.hearts.Full() == 0:
		w.pendingReset = true
	}
}

func (w *World) newPlayer() *entity.Player {
	pc := w.config.Entities.Player
	phys := w.config.Physics

	frames := make(map[entity.AnimationState]int, len(pc.Sprite.Animations))
	for name, anim := range pc.Sprite.Animations {
		if s, ok := entity.ParseAnimationState(name); ok {
			frames[s] = anim.Frames
		}
	}

	body := entity.NewBody(w.stage.SpawnX, w.stage.SpawnY, pc.Width, pc.Height, pc.Hitbox.Width, pc.Hitbox.Height)
	return entity.NewPlayer(body, entity.PlayerTuning{
		XVelocity:          phys.Movement.XVelocity,
		JumpPower:          phys.Jump.Power,
		RollSpeed:          phys.Roll.Speed,
		InvincibleDuration: phys.Combat.InvincibleDuration,
		FrameInterval:      phys.Timing.FrameInterval,
		Frames:             frames,
	})
}

func (w *World) spawnEntities() {
	w.combat.Clear()
	tile := w.stage.TileSize

	for y, row := range w.level.Enemies {
		for x, v := range row {
			if v == config.CellEmpty {
				continue
			}
			enemyCfg, ok := w.enemyTypes[v]
			if !ok {
				log.Printf("[world] unknown enemy value %d at (%d,%d)", v, x, y)
				continue
			}
			w.combat.SpawnEnemy(enemyCfg, x, y, tile)
		}
	}

	for y, row := range w.level.Gems {
		for x, v := range row {
			if v == config.CellEmpty {
				continue
			}
			pickupCfg, ok := w.pickupTypes[v]
			if !ok {
				log.Printf("[world] unknown gem value %d at (%d,%d)", v, x, y)
				continue
			}
			w.combat.SpawnGem(pickupCfg, x, y, tile)
		}
	}
	w.totalGems = len(w.combat.GetGems())
}

// Player returns the player
func (w *World) Player() *entity.Player { return w.player }

// Stage returns the static geometry of the current level
func (w *World) Stage() *entity.Stage { return w.stage }

// Level returns the current level config
func (w *World) Level() *config.LevelConfig { return w.level }

// Camera returns the camera
func (w *World) Camera() *system.Camera { return w.camera }

// Hearts returns the health bar
func (w *World) Hearts() entity.Hearts { return w.hearts }

// Enemies returns the live enemies
func (w *World) Enemies() []*entity.Enemy { return w.combat.GetEnemies() }

// Gems returns the gems not yet collected
func (w *World) Gems() []*entity.Gem { return w.combat.GetGems() }

// Effects returns the running effects
func (w *World) Effects() []*entity.Effect { return w.combat.GetEffects() }

// GemCount returns the number of gems collected since the last reset
func (w *World) GemCount() int { return w.gemCount }

// TotalGems returns the number of gems the level started with
func (w *World) TotalGems() int { return w.totalGems }

// Won reports whether every gem has been collected
func (w *World) Won() bool { return w.won }

// Time returns the simulation clock in seconds
func (w *World) Time() float64 { return w.time }

// Summary is a snapshot of the world used for logs and replay checks
type Summary struct {
	Level    string  `json:"level"`
	Time     float64 `json:"time"`
	PlayerX  float64 `json:"playerX"`
	PlayerY  float64 `json:"playerY"`
	Hearts   int     `json:"hearts"`
	Gems     int     `json:"gems"`
	GemsLeft int     `json:"gemsLeft"`
	Enemies  int     `json:"enemies"`
	Defeated int     `json:"defeated"`
	Resets   int     `json:"resets"`
	Won      bool    `json:"won"`
}

// Summary returns the current snapshot
func (w *World) Summary() Summary {
	return Summary{
		Level:    w.level.ID,
		Time:     w.time,
		PlayerX:  w.player.X,
		PlayerY:  w.player.Y,
		Hearts:   w.hearts.Full(),
		Gems:     w.gemCount,
		GemsLeft: len(w.combat.GetGems()),
		Enemies:  len(w.combat.GetEnemies()),
		Defeated: w.defeated,
		Resets:   w.resets,
		Won:      w.won,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("level=%s t=%.2fs player=(%.1f,%.1f) hearts=%d gems=%d left=%d enemies=%d defeated=%d resets=%d won=%t",
		s.Level, s.Time, s.PlayerX, s.PlayerY, s.Hearts, s.Gems, s.GemsLeft, s.Enemies, s.Defeated, s.Resets, s.Won)
}
