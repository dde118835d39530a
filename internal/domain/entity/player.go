package entity

// PlayerAction is the exclusive action the player is performing
type PlayerAction int

const (
	ActionNone PlayerAction = iota
	ActionAttacking
	ActionRolling
)

func (a PlayerAction) String() string {
	switch a {
	case ActionAttacking:
		return "attacking"
	case ActionRolling:
		return "rolling"
	default:
		return "none"
	}
}

// PlayerTuning holds the movement constants of the player
type PlayerTuning struct {
	XVelocity          float64
	JumpPower          float64
	RollSpeed          float64
	InvincibleDuration float64 // seconds
	FrameInterval      float64 // seconds per animation frame
	Frames             map[AnimationState]int
}

// Player represents the player entity
type Player struct {
	Body
	Tuning PlayerTuning

	Facing Facing
	Action PlayerAction

	Invincible      bool
	InvincibleUntil float64 // world clock time at which invincibility ends

	Animation AnimationState
	Animator  Animator
}

// NewPlayer creates a player facing right in the idle animation
func NewPlayer(body Body, tuning PlayerTuning) *Player {
	p := &Player{
		Body:      body,
		Tuning:    tuning,
		Facing:    FacingRight,
		Animation: AnimIdle,
	}
	p.Animator = NewAnimator(p.framesOf(AnimIdle), tuning.FrameInterval)
	return p
}

func (p *Player) framesOf(s AnimationState) int {
	if n, ok := p.Tuning.Frames[s]; ok && n > 0 {
		return n
	}
	return 1
}

// Jump launches the player if grounded. Returns false when airborne.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VY = -p.Tuning.JumpPower
	p.OnGround = false
	return true
}

// Attack starts an attack unless another action is in progress
func (p *Player) Attack() bool {
	if p.Action != ActionNone {
		return false
	}
	p.Action = ActionAttacking
	p.VX = 0
	p.startAnimation(AnimAttack)
	return true
}

// Roll starts a roll in the facing direction unless another action is in progress
func (p *Player) Roll() bool {
	if p.Action != ActionNone {
		return false
	}
	p.Action = ActionRolling
	p.VX = p.Facing.Dir() * p.Tuning.RollSpeed
	p.startAnimation(AnimRoll)
	return true
}

// HandleInput sets the horizontal velocity from the held direction keys.
// Movement is ignored while an action is in progress. Right wins when both
// directions are held.
func (p *Player) HandleInput(left, right bool) {
	if p.Action != ActionNone {
		return
	}
	p.VX = 0
	if right {
		p.VX = p.Tuning.XVelocity
	} else if left {
		p.VX = -p.Tuning.XVelocity
	}
}

// SetInvincible makes the player invincible until now + InvincibleDuration
func (p *Player) SetInvincible(now float64) {
	p.Invincible = true
	p.InvincibleUntil = now + p.Tuning.InvincibleDuration
}

// UpdateInvincibility clears invincibility once its expiry has passed
func (p *Player) UpdateInvincibility(now float64) {
	if p.Invincible && now >= p.InvincibleUntil {
		p.Invincible = false
	}
}

// UpdateFacing follows the sign of VX and holds when VX is zero
func (p *Player) UpdateFacing() {
	if p.VX > 0 {
		p.Facing = FacingRight
	} else if p.VX < 0 {
		p.Facing = FacingLeft
	}
}

// UpdateAnimation advances the current strip and selects the next state.
// Must run after physics so the contact flags are current.
func (p *Player) UpdateAnimation(dt float64) {
	if p.Animator.Advance(dt) && p.Action != ActionNone {
		p.Action = ActionNone
	}
	if p.Action != ActionNone {
		return
	}

	switch {
	case p.OnGround && p.VX == 0:
		p.switchAnimation(AnimIdle)
	case p.OnGround && p.VX != 0:
		p.switchAnimation(AnimRun)
	case !p.OnGround && p.VY < 0:
		p.switchAnimation(AnimJump)
	case !p.OnGround && p.VY > 0:
		p.switchAnimation(AnimLand)
	}
}

// switchAnimation changes state only when it differs, keeping the frame otherwise
func (p *Player) switchAnimation(s AnimationState) {
	if p.Animation == s {
		return
	}
	p.startAnimation(s)
}

func (p *Player) startAnimation(s AnimationState) {
	p.Animation = s
	p.Animator.Reset(p.framesOf(s))
}
