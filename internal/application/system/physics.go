package system

import (
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// Defaults used when the physics config leaves a value at zero
const (
	DefaultGravity         = 580.0
	DefaultCollisionBuffer = 0.0001
)

// PhysicsSystem integrates bodies and resolves them against the static
// geometry of a stage, one axis at a time.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// SetStage swaps the geometry bodies collide with
func (s *PhysicsSystem) SetStage(stage *entity.Stage) {
	s.stage = stage
}

// Stage returns the current geometry
func (s *PhysicsSystem) Stage() *entity.Stage {
	return s.stage
}

// Step advances a body by dt seconds:
// gravity, horizontal move and resolution, platform catch, then vertical
// move and resolution. A non-positive dt leaves the body untouched.
func (s *PhysicsSystem) Step(body *entity.Body, dt float64) {
	if dt <= 0 {
		return
	}

	body.ClearContacts()
	s.applyGravity(body, dt)

	body.X += body.VX * dt
	s.resolveX(body)

	if s.catchOnPlatform(body, dt) {
		return
	}

	body.Y += body.VY * dt
	s.resolveY(body)
}

// SnapToGround places a body on the solid block under its bottom center.
// Returns false when there is no block there.
func (s *PhysicsSystem) SnapToGround(body *entity.Body) bool {
	if s.stage == nil {
		return false
	}

	bounds := body.Bounds()
	block, ok := s.stage.SolidAt(bounds.CenterX(), bounds.Bottom())
	if !ok {
		return false
	}

	body.SetHitboxY(block.Y - body.HitboxH - s.buffer())
	body.VY = 0
	body.OnGround = true
	return true
}

func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	if body.Weightless {
		return
	}
	body.VY += s.gravity() * dt
}

// resolveX snaps the hitbox out of the first overlapping solid, against the
// direction of travel. Velocity is kept.
func (s *PhysicsSystem) resolveX(body *entity.Body) {
	if s.stage == nil {
		return
	}

	hb := body.Hitbox()
	for _, block := range s.stage.Solids {
		if !hb.Overlaps(block.Rect) {
			continue
		}
		if body.VX < 0 {
			body.SetHitboxX(block.Right() + s.buffer())
			body.OnWallLeft = true
			return
		}
		if body.VX > 0 {
			body.SetHitboxX(block.X - body.HitboxW - s.buffer())
			body.OnWallRight = true
			return
		}
	}
}

// catchOnPlatform lands the body on the first one-way platform that catches it
func (s *PhysicsSystem) catchOnPlatform(body *entity.Body, dt float64) bool {
	if s.stage == nil {
		return false
	}

	hb := body.Hitbox()
	for _, platform := range s.stage.Platforms {
		if platform.Catches(hb, body.VY, dt) {
			body.VY = 0
			body.SetHitboxY(platform.Y - body.HitboxH - s.buffer())
			body.OnGround = true
			return true
		}
	}
	return false
}

// resolveY snaps the hitbox out of the first overlapping solid and stops
// vertical motion.
func (s *PhysicsSystem) resolveY(body *entity.Body) {
	if s.stage == nil {
		return
	}

	hb := body.Hitbox()
	for _, block := range s.stage.Solids {
		if !hb.Overlaps(block.Rect) {
			continue
		}
		if body.VY < 0 {
			body.VY = 0
			body.SetHitboxY(block.Bottom() + s.buffer())
			body.OnCeiling = true
			return
		}
		if body.VY > 0 {
			body.VY = 0
			body.SetHitboxY(block.Y - body.HitboxH - s.buffer())
			body.OnGround = true
			return
		}
	}
}

func (s *PhysicsSystem) gravity() float64 {
	if s.config == nil || s.config.Physics.Gravity == 0 {
		return DefaultGravity
	}
	return s.config.Physics.Gravity
}

func (s *PhysicsSystem) buffer() float64 {
	if s.config == nil || s.config.Physics.CollisionBuffer <= 0 {
		return DefaultCollisionBuffer
	}
	return s.config.Physics.CollisionBuffer
}
