package entity

// EnemyKind selects the steering behavior of an enemy
type EnemyKind int

const (
	EnemyPatrol EnemyKind = iota // walks back and forth on the ground
	EnemyFlying                  // hovers, bobbing up and down
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "patrol"
	case EnemyFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// EnemyBehavior holds the steering parameters of an enemy
type EnemyBehavior struct {
	Speed          float64
	PatrolDistance float64 // 0 means turn only at walls
	Amplitude      float64 // flying: vertical travel in pixels
	FlightPeriod   float64 // flying: seconds for a full up-and-down cycle
	Frames         int
	FrameInterval  float64
}

// Enemy represents an enemy entity
type Enemy struct {
	Body
	ID     EntityID
	Kind   EnemyKind
	Facing Facing

	Behavior   EnemyBehavior
	PatrolMinX float64
	PatrolMaxX float64
	BaseY      float64

	Animator Animator
	flight   *Oscillator
}

// NewEnemy creates an enemy facing left, patrolling around its spawn X
func NewEnemy(id EntityID, kind EnemyKind, body Body, behavior EnemyBehavior) *Enemy {
	e := &Enemy{
		Body:       body,
		ID:         id,
		Kind:       kind,
		Facing:     FacingLeft,
		Behavior:   behavior,
		PatrolMinX: body.X - behavior.PatrolDistance,
		PatrolMaxX: body.X + behavior.PatrolDistance,
		BaseY:      body.Y,
		Animator:   NewAnimator(behavior.Frames, behavior.FrameInterval),
	}
	if kind == EnemyFlying {
		e.Weightless = true
		e.flight = NewOscillator(behavior.Amplitude, behavior.FlightPeriod)
	}
	return e
}

// Steer decides the velocity for the coming physics step.
func (e *Enemy) Steer(dt float64) {
	if dt <= 0 {
		return
	}

	bounded := e.Behavior.PatrolDistance > 0
	switch e.Facing {
	case FacingLeft:
		if e.OnWallLeft || (bounded && e.X <= e.PatrolMinX) {
			e.Facing = FacingRight
		}
	case FacingRight:
		if e.OnWallRight || (bounded && e.X >= e.PatrolMaxX) {
			e.Facing = FacingLeft
		}
	}
	e.VX = e.Facing.Dir() * e.Behavior.Speed

	if e.Kind == EnemyFlying && e.flight != nil {
		target := e.BaseY + e.flight.Update(dt)
		e.VY = (target - e.Y) / dt
	}
}
