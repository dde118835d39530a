// Package scene defines the screens the game loop switches between:
// the title screen and the level being played.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by game.Game. A scene hands over to another
// by returning it from Update.
type Scene interface {
	// Update advances the scene by dt seconds. dt is already clamped by the
	// frame clock and is 0 on the first tick and after a long stall.
	// A non-nil next scene replaces this one; an error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when another scene replaces this one.
	OnExit()
}
