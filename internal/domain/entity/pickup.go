package entity

// Gem is a collectible that ends the level once all are picked up
type Gem struct {
	ID       EntityID
	Hitbox   Rect
	Animator Animator
}

// NewGem creates a gem occupying the given rectangle
func NewGem(id EntityID, hitbox Rect, frames int, interval float64) *Gem {
	return &Gem{ID: id, Hitbox: hitbox, Animator: NewAnimator(frames, interval)}
}

// EffectKind is the sprite an effect plays
type EffectKind int

const (
	EffectEnemyDeath EffectKind = iota
	EffectItemFeedback
)

// Effect is a one-shot animation removed after a single cycle.
type Effect struct {
	Kind     EffectKind
	Bounds   Rect
	Animator Animator
	Done     bool
}

// NewEffect creates an effect centered on the given point
func NewEffect(kind EffectKind, cx, cy, w, h float64, frames int, interval float64) *Effect {
	return &Effect{
		Kind:     kind,
		Bounds:   Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h},
		Animator: NewAnimator(frames, interval),
	}
}

// Update advances the effect and marks it done after one full cycle
func (e *Effect) Update(dt float64) {
	if e.Animator.Advance(dt) {
		e.Done = true
	}
}

// Heart is one unit of player health
type Heart struct {
	Depleted bool
}

// Hearts is the player's health bar, left to right.
type Hearts []Heart

// NewHearts creates n full hearts
func NewHearts(n int) Hearts {
	return make(Hearts, n)
}

// Full returns the number of hearts that are not depleted
func (h Hearts) Full() int {
	n := 0
	for _, heart := range h {
		if !heart.Depleted {
			n++
		}
	}
	return n
}

// Deplete empties the right-most full heart. Returns false if none is left.
func (h Hearts) Deplete() bool {
	for i := len(h) - 1; i >= 0; i-- {
		if !h[i].Depleted {
			h[i].Depleted = true
			return true
		}
	}
	return false
}

// DepleteAll empties every heart
func (h Hearts) DepleteAll() {
	for i := range h {
		h[i].Depleted = true
	}
}

// Refill restores every heart
func (h Hearts) Refill() {
	for i := range h {
		h[i].Depleted = false
	}
}
