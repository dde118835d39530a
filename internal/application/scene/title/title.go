// Package title provides the "press start" scene shown before play begins.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sunnyrun/internal/application/scene"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// blinkPeriod is how long the prompt stays visible, then hidden
const blinkPeriod = 0.5

// Title waits for a start key and then hands over to the next scene.
type Title struct {
	heading string
	screenW int
	screenH int
	start   func() (scene.Scene, error)

	// pressed reports whether a start key went down this tick
	pressed func() bool
	elapsed float64
}

// New creates a title scene. start builds the scene entered on key press.
func New(heading string, screenW, screenH int, start func() (scene.Scene, error)) *Title {
	return &Title{
		heading: heading,
		screenW: screenW,
		screenH: screenH,
		start:   start,
		pressed: startPressed,
	}
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Update implements scene.Scene
func (t *Title) Update(dt float64) (scene.Scene, error) {
	if dt > 0 {
		t.elapsed += dt
	}
	if !t.pressed() {
		return nil, nil
	}
	return t.start()
}

// PromptVisible reports whether the blinking prompt is shown this frame
func (t *Title) PromptVisible() bool {
	return int(t.elapsed/blinkPeriod)%2 == 0
}

// Draw implements scene.Scene
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, t.heading, t.screenW/2-len(t.heading)*3, t.screenH/3)
	if t.PromptVisible() {
		ebitenutil.DebugPrintAt(screen, "PRESS START", t.screenW/2-33, t.screenH/2)
	}
	ebitenutil.DebugPrintAt(screen, "Enter / Space", t.screenW/2-39, t.screenH/2+16)
}

// OnEnter implements scene.Scene
func (t *Title) OnEnter() {
	t.elapsed = 0
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}
