// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sunnyrun/internal/application/replay"
	"github.com/younwookim/sunnyrun/internal/application/scene"
	"github.com/younwookim/sunnyrun/internal/application/state"
	"github.com/younwookim/sunnyrun/internal/application/system"
	"github.com/younwookim/sunnyrun/internal/application/world"
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
	"github.com/younwookim/sunnyrun/internal/infrastructure/levelstore"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorSolid     = color.RGBA{80, 80, 100, 255}
	colorBlocker   = color.RGBA{90, 70, 110, 255}
	colorPlatform  = color.RGBA{150, 110, 60, 255}
	colorDeath     = color.RGBA{200, 50, 50, 120}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorHitbox    = color.RGBA{200, 200, 100, 128}
	colorPatrol    = color.RGBA{200, 100, 100, 255}
	colorFlying    = color.RGBA{220, 140, 90, 255}
	colorGem       = color.RGBA{255, 215, 0, 255}
	colorEffect    = color.RGBA{255, 255, 255, 90}
	colorHeart     = color.RGBA{230, 60, 80, 255}
	colorHeartGone = color.RGBA{60, 60, 60, 255}
)

// Options configures optional features of the scene
type Options struct {
	// RecordPath enables input recording to the given file
	RecordPath string
	// Reloads delivers paths of level files changed on disk
	Reloads <-chan string
	// LoadLevel reads a changed level file
	LoadLevel func(path string) (*config.LevelConfig, error)
	// ShowHitboxes draws hitboxes over the sprites
	ShowHitboxes bool
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	world   *world.World
	input   *system.InputSystem
	state   state.GameState
	screenW int
	screenH int
	opts    Options

	// readInput returns the input of the current tick
	readInput func() system.InputState

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene for a level.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, level *config.LevelConfig, opts Options) (*Playing, error) {
	w, err := world.New(cfg, level)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		config:         cfg,
		world:          w,
		input:          system.NewInputSystem(),
		state:          state.StatePlaying,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		opts:           opts,
		recordFilename: opts.RecordPath,
	}
	p.readInput = p.input.GetInput

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(w.Level().ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	w.OnReset = func() {
		log.Printf("Level %q reset", w.Level().ID)
	}
	return p, nil
}

// World returns the simulated world
func (p *Playing) World() *world.World {
	return p.world
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReloads()

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.readInput()

	// The tick that toggles pause is not simulated
	if input.PausePressed {
		if next := p.state.TogglePause(); next != p.state {
			p.state = next
			return nil, nil
		}
	}
	if !p.state.Ticks() {
		return nil, nil
	}

	p.world.Tick(dt, input)
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, input)
	}

	prev := p.state
	p.state = p.state.Settle(p.world.Won())
	if p.state == state.StateStageClear && prev != state.StateStageClear {
		p.saveRecording()
	}

	return nil, nil // nil = stay on this scene
}

// applyReloads drains pending level changes without blocking. Only a change
// to the level being played replaces the world's level.
func (p *Playing) applyReloads() {
	if p.opts.Reloads == nil || p.opts.LoadLevel == nil {
		return
	}
	for {
		select {
		case path, ok := <-p.opts.Reloads:
			if !ok {
				p.opts.Reloads = nil
				return
			}
			if levelstore.LevelName(path) != p.world.Level().ID {
				continue
			}
			lvl, err := p.opts.LoadLevel(path)
			if err != nil {
				log.Printf("[watch] reload %s failed, keeping current level: %v", path, err)
				continue
			}
			if lvl.ID == "" {
				lvl.ID = p.world.Level().ID
			}
			if err := p.world.Load(lvl); err != nil {
				log.Printf("[watch] reload %s failed, keeping current level: %v", path, err)
				continue
			}
			p.state = state.StatePlaying
			log.Printf("[watch] reloaded %s", path)
		default:
			return
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.world.Camera()
	view := cam.View()
	stage := p.world.Stage()

	// Illusions look exactly like solid ground.
	p.drawBlocks(screen, cam, view, stage.Illusions, colorSolid)
	p.drawBlocks(screen, cam, view, stage.Solids, colorSolid)
	p.drawBlocks(screen, cam, view, stage.Platforms, colorPlatform)
	if p.opts.ShowHitboxes {
		p.drawBlocks(screen, cam, view, stage.Deaths, colorDeath)
	}

	for _, gem := range p.world.Gems() {
		p.drawRect(screen, cam, gem.Hitbox, colorGem)
	}
	for _, enemy := range p.world.Enemies() {
		c := colorPatrol
		if enemy.Kind == entity.EnemyFlying {
			c = colorFlying
		}
		p.drawRect(screen, cam, enemy.Bounds(), c)
	}
	p.drawPlayer(screen, cam)
	for _, effect := range p.world.Effects() {
		p.drawRect(screen, cam, effect.Bounds, colorEffect)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateStageClear:
		s := p.world.Summary()
		text := fmt.Sprintf("YOU WIN!\n\nGems: %d\nTime: %.1fs\n\nPress R to play again", s.Gems, s.Time)
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 160}, text)
	}
}

func (p *Playing) drawBlocks(screen *ebiten.Image, cam *system.Camera, view entity.Rect, blocks []entity.Block, c color.Color) {
	for _, b := range blocks {
		if !b.Overlaps(view) {
			continue
		}
		switch {
		case b.Kind != entity.BlockBlocker:
			p.drawRect(screen, cam, b.Rect, c)
		case p.opts.ShowHitboxes:
			p.drawRect(screen, cam, b.Rect, colorBlocker)
		}
	}
}

func (p *Playing) drawRect(screen *ebiten.Image, cam *system.Camera, r entity.Rect, c color.Color) {
	x, y := cam.WorldToScreen(r.X, r.Y)
	ebitenutil.DrawRect(screen, x, y, r.W*cam.Zoom, r.H*cam.Zoom, c)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam *system.Camera) {
	player := p.world.Player()

	// Half transparent while invincible
	c := colorPlayer
	if player.Invincible {
		c = color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A / 2}
	}
	p.drawRect(screen, cam, player.Bounds(), c)

	if p.opts.ShowHitboxes || ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawRect(screen, cam, player.Hitbox(), colorHitbox)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	for i, heart := range p.world.Hearts() {
		c := colorHeart
		if heart.Depleted {
			c = colorHeartGone
		}
		ebitenutil.DrawRect(screen, float64(10+i*14), 10, 10, 10, c)
	}

	gemText := fmt.Sprintf("Gems: %d/%d", p.world.GemCount(), p.world.TotalGems())
	ebitenutil.DebugPrintAt(screen, gemText, 10, 24)

	controls := "A/D: Move | W: Jump | Space: Attack | Shift: Roll | R: Restart | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
