package entity

// Body is the kinematic state shared by every moving entity.
//
// The hitbox is never stored: it is derived from the position and a fixed
// offset computed at construction, so it always follows X/Y.
type Body struct {
	X, Y          float64 // top-left of the visual box
	VX, VY        float64 // pixels per second
	Width, Height float64

	HitboxW, HitboxH float64
	offsetX, offsetY float64

	// Contact flags, recomputed every physics step.
	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool

	// Weightless bodies are not pulled by gravity.
	Weightless bool
}

// NewBody creates a body whose hitbox is centered horizontally and
// aligned to the bottom of the visual box.
func NewBody(x, y, width, height, hitboxW, hitboxH float64) Body {
	return Body{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		HitboxW: hitboxW,
		HitboxH: hitboxH,
		offsetX: (width - hitboxW) / 2,
		offsetY: height - hitboxH,
	}
}

// Hitbox returns the collision rectangle in world coordinates
func (b *Body) Hitbox() Rect {
	return Rect{X: b.X + b.offsetX, Y: b.Y + b.offsetY, W: b.HitboxW, H: b.HitboxH}
}

// Bounds returns the visual rectangle in world coordinates
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// HitboxOffset returns the fixed offset of the hitbox from the body origin
func (b *Body) HitboxOffset() (float64, float64) {
	return b.offsetX, b.offsetY
}

// SetHitboxX moves the body so the hitbox left edge lands on x
func (b *Body) SetHitboxX(x float64) {
	b.X = x - b.offsetX
}

// SetHitboxY moves the body so the hitbox top edge lands on y
func (b *Body) SetHitboxY(y float64) {
	b.Y = y - b.offsetY
}

// ClearContacts resets all contact flags
func (b *Body) ClearContacts() {
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}

// Facing is the horizontal direction an entity looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Dir returns +1 for right and -1 for left
func (f Facing) Dir() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
