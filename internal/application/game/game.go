// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sunnyrun/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	clock   *FrameClock
	fixedDT float64 // used instead of the clock when > 0
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   NewFrameClock(DefaultMaxDelta, DefaultResumeThreshold),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.delta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.clock.Reset()
	}

	return nil
}

func (g *Game) delta() float64 {
	if g.fixedDT > 0 {
		return g.fixedDT
	}
	return g.clock.Tick()
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the frame clock
func (g *Game) SetClock(clock *FrameClock) {
	g.clock = clock
}

// SetDT fixes the delta time passed to scenes, bypassing the clock.
// Zero restores the clock.
func (g *Game) SetDT(dt float64) {
	g.fixedDT = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
