package system

import (
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// Side is the side of the first hitbox that a second hitbox struck
type Side int

const (
	SideNone Side = iota
	SideBottom
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// CollisionSide returns SideNone when a and b are disjoint, otherwise the
// side of a with the least penetration. Equal depths resolve in the order
// bottom, top, left, right.
func CollisionSide(a, b entity.Rect) Side {
	if !a.Overlaps(b) {
		return SideNone
	}

	side := SideBottom
	least := a.Bottom() - b.Y

	candidates := []struct {
		side  Side
		depth float64
	}{
		{SideTop, b.Bottom() - a.Y},
		{SideLeft, b.Right() - a.X},
		{SideRight, a.Right() - b.X},
	}
	for _, c := range candidates {
		if c.depth < least {
			side = c.side
			least = c.depth
		}
	}
	return side
}

// ContactResult is the outcome of the player touching an enemy
type ContactResult int

const (
	ContactNone ContactResult = iota
	ContactStomp
	ContactRollKill
	ContactHurt
)

// CombatSystem owns the enemies, gems and effects of a level and resolves
// their contacts with the player.
type CombatSystem struct {
	config  *config.GameConfig
	physics *PhysicsSystem

	enemies []*entity.Enemy
	gems    []*entity.Gem
	effects []*entity.Effect
	nextID  entity.EntityID

	// Event callbacks
	OnPlayerHurt    func()
	OnEnemyDefeated func(e *entity.Enemy)
	OnGemCollected  func(g *entity.Gem)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, physics *PhysicsSystem) *CombatSystem {
	return &CombatSystem{
		config:  cfg,
		physics: physics,
		enemies: make([]*entity.Enemy, 0, 16),
		gems:    make([]*entity.Gem, 0, 16),
		effects: make([]*entity.Effect, 0, 16),
	}
}

// Clear removes every enemy, gem and effect
func (s *CombatSystem) Clear() {
	s.enemies = s.enemies[:0]
	s.gems = s.gems[:0]
	s.effects = s.effects[:0]
	s.nextID = 0
}

// SpawnEnemy places an enemy whose bottom edge sits on the bottom of the
// tile cell at (x, y) and snaps it onto the ground if there is any.
func (s *CombatSystem) SpawnEnemy(enemyCfg config.EnemyConfig, cellX, cellY int, tileSize float64) *entity.Enemy {
	w := enemyCfg.WidthTiles * tileSize
	h := enemyCfg.HeightTiles * tileSize
	x := float64(cellX) * tileSize
	y := float64(cellY+1)*tileSize - h

	kind := entity.EnemyPatrol
	if enemyCfg.Kind == "flying" {
		kind = entity.EnemyFlying
	}

	s.nextID++
	enemy := entity.NewEnemy(s.nextID, kind, entity.NewBody(x, y, w, h, w, h), entity.EnemyBehavior{
		Speed:          enemyCfg.Speed,
		PatrolDistance: enemyCfg.PatrolDistance,
		Amplitude:      enemyCfg.Amplitude,
		FlightPeriod:   enemyCfg.FlightPeriod,
		Frames:         enemyCfg.Sprite.Frames(""),
		FrameInterval:  s.frameInterval(),
	})
	if kind == entity.EnemyPatrol {
		s.physics.SnapToGround(&enemy.Body)
	}

	s.enemies = append(s.enemies, enemy)
	return enemy
}

// SpawnGem places a gem at the top-left of the tile cell at (x, y)
func (s *CombatSystem) SpawnGem(pickupCfg config.PickupConfig, cellX, cellY int, tileSize float64) *entity.Gem {
	s.nextID++
	hitbox := entity.Rect{
		X: float64(cellX) * tileSize,
		Y: float64(cellY) * tileSize,
		W: pickupCfg.WidthTiles * tileSize,
		H: pickupCfg.HeightTiles * tileSize,
	}
	gem := entity.NewGem(s.nextID, hitbox, pickupCfg.Sprite.Frames(""), s.frameInterval())
	s.gems = append(s.gems, gem)
	return gem
}

// SpawnEffect starts a one-shot effect centered on (cx, cy)
func (s *CombatSystem) SpawnEffect(kind entity.EffectKind, cx, cy float64) *entity.Effect {
	name := "enemyDeath"
	if kind == entity.EffectItemFeedback {
		name = "itemFeedback"
	}

	var effectCfg config.EffectConfig
	if s.config != nil && s.config.Entities != nil {
		effectCfg = s.config.Entities.Effects[name]
	}
	effect := entity.NewEffect(kind, cx, cy, effectCfg.Width, effectCfg.Height, effectCfg.Sprite.Frames(""), s.frameInterval())
	s.effects = append(s.effects, effect)
	return effect
}

// ResolveContact applies the contact rules between the player and one enemy.
//
// Landing on any enemy from above while airborne stomps it. A grounded,
// rolling player kills patrol enemies on side contact. Other side contact
// hurts, and flying enemies also hurt from below the player.
func (s *CombatSystem) ResolveContact(player *entity.Player, enemy *entity.Enemy) ContactResult {
	side := CollisionSide(player.Hitbox(), enemy.Hitbox())
	if side == SideNone {
		return ContactNone
	}

	if side == SideBottom && !player.OnGround {
		player.VY = -s.stompBounce()
		return ContactStomp
	}

	sideHit := side == SideLeft || side == SideRight
	switch enemy.Kind {
	case entity.EnemyPatrol:
		if sideHit && player.OnGround && player.Action == entity.ActionRolling {
			return ContactRollKill
		}
		if sideHit {
			return ContactHurt
		}
	case entity.EnemyFlying:
		if sideHit || side == SideTop {
			return ContactHurt
		}
	}
	return ContactNone
}

// UpdateEnemies steers, moves and animates every enemy, then resolves its
// contact with the player. Defeated enemies are removed during the reverse scan.
func (s *CombatSystem) UpdateEnemies(player *entity.Player, dt float64) {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		enemy := s.enemies[i]
		enemy.Steer(dt)
		s.physics.Step(&enemy.Body, dt)
		enemy.Animator.Advance(dt)

		switch s.ResolveContact(player, enemy) {
		case ContactStomp, ContactRollKill:
			bounds := enemy.Bounds()
			s.SpawnEffect(entity.EffectEnemyDeath, bounds.CenterX(), bounds.CenterY())
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			if s.OnEnemyDefeated != nil {
				s.OnEnemyDefeated(enemy)
			}
		case ContactHurt:
			if s.OnPlayerHurt != nil {
				s.OnPlayerHurt()
			}
		}
	}
}

// UpdateGems animates the gems and collects the ones the player touches.
// Returns the number collected this tick.
func (s *CombatSystem) UpdateGems(player *entity.Player, dt float64) int {
	collected := 0
	hb := player.Hitbox()
	for i := len(s.gems) - 1; i >= 0; i-- {
		gem := s.gems[i]
		gem.Animator.Advance(dt)

		if CollisionSide(hb, gem.Hitbox) == SideNone {
			continue
		}
		s.SpawnEffect(entity.EffectItemFeedback, gem.Hitbox.CenterX(), gem.Hitbox.Y-gem.Hitbox.H/2)
		s.gems = append(s.gems[:i], s.gems[i+1:]...)
		collected++
		if s.OnGemCollected != nil {
			s.OnGemCollected(gem)
		}
	}
	return collected
}

// UpdateEffects advances effects and sweeps the finished ones
func (s *CombatSystem) UpdateEffects(dt float64) {
	for _, effect := range s.effects {
		effect.Update(dt)
	}

	kept := s.effects[:0]
	for _, effect := range s.effects {
		if !effect.Done {
			kept = append(kept, effect)
		}
	}
	for i := len(kept); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = kept
}

// GetEnemies returns all active enemies
func (s *CombatSystem) GetEnemies() []*entity.Enemy {
	return s.enemies
}

// GetGems returns the gems not yet collected
func (s *CombatSystem) GetGems() []*entity.Gem {
	return s.gems
}

// GetEffects returns the running effects
func (s *CombatSystem) GetEffects() []*entity.Effect {
	return s.effects
}

func (s *CombatSystem) stompBounce() float64 {
	if s.config == nil || s.config.Physics == nil || s.config.Physics.Combat.StompBounce == 0 {
		return 200
	}
	return s.config.Physics.Combat.StompBounce
}

func (s *CombatSystem) frameInterval() float64 {
	if s.config == nil || s.config.Physics == nil || s.config.Physics.Timing.FrameInterval <= 0 {
		return 0.1
	}
	return s.config.Physics.Timing.FrameInterval
}
