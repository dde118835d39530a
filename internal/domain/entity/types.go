package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// BlockKind classifies a piece of static level geometry
type BlockKind int

const (
	BlockSolid BlockKind = iota
	BlockBlocker
	BlockPlatform
	BlockDeath
	BlockIllusion
)

// String returns the kind name
func (k BlockKind) String() string {
	switch k {
	case BlockSolid:
		return "solid"
	case BlockBlocker:
		return "blocker"
	case BlockPlatform:
		return "platform"
	case BlockDeath:
		return "death"
	case BlockIllusion:
		return "illusion"
	default:
		return "unknown"
	}
}

// Block is an immutable rectangle of static geometry.
type Block struct {
	Kind BlockKind
	Rect
}

// Catches is the one-way platform hit test: the hitbox is descending,
// horizontally over the block, not already below its band, and its bottom
// edge reaches the block top within this tick.
func (b Block) Catches(hitbox Rect, vy, dt float64) bool {
	if vy <= 0 || !hitbox.OverlapsX(b.Rect) {
		return false
	}
	bottom := hitbox.Bottom()
	return bottom <= b.Bottom() && bottom+vy*dt >= b.Y
}

// Stage is the static geometry of a loaded level.
// It is built once per level load and never mutated during a tick.
type Stage struct {
	Cols     int
	Rows     int
	TileSize float64

	// Solids holds solid and blocker blocks in registration (row-major) order.
	Solids    []Block
	Platforms []Block
	Deaths    []Block
	Illusions []Block

	SpawnX float64
	SpawnY float64
}

// Bounds returns the level rectangle in world pixels
func (s *Stage) Bounds() Rect {
	return Rect{
		W: float64(s.Cols) * s.TileSize,
		H: float64(s.Rows) * s.TileSize,
	}
}

// SolidAt returns the first solid block containing the point.
func (s *Stage) SolidAt(x, y float64) (Block, bool) {
	for _, b := range s.Solids {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Block{}, false
}

// TouchesDeath reports whether r overlaps any death zone
func (s *Stage) TouchesDeath(r Rect) bool {
	for _, b := range s.Deaths {
		if b.Overlaps(r) {
			return true
		}
	}
	return false
}
