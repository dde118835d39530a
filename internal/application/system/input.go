package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sunnyrun/internal/domain/entity"
)

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of one tick. Direction keys are held state;
// the action fields are true only on the tick the key went down.
type InputState struct {
	Left           bool
	Right          bool
	JumpPressed    bool
	AttackPressed  bool
	RollPressed    bool
	PausePressed   bool
	RestartPressed bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		AttackPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		RollPressed:    inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// UpdatePlayer fires the edge-triggered actions and maps the held
// direction keys to horizontal velocity.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	if input.JumpPressed {
		player.Jump()
	}
	if input.AttackPressed {
		player.Attack()
	}
	if input.RollPressed {
		player.Roll()
	}
	player.HandleInput(input.Left, input.Right)
}
