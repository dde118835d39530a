package system

import (
	"github.com/younwookim/sunnyrun/internal/domain/entity"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// CameraMode selects how the camera tracks its target
type CameraMode int

const (
	CameraFollow CameraMode = iota // deadzone + exponential smoothing
	CameraCenter                   // centered on the target every tick
)

// ParseCameraMode maps a config name to a mode, defaulting to follow
func ParseCameraMode(name string) CameraMode {
	if name == "center" {
		return CameraCenter
	}
	return CameraFollow
}

// Camera tracks the player and exposes the visible world rectangle.
type Camera struct {
	X, Y float64 // top-left in world pixels
	Zoom float64

	Mode         CameraMode
	ViewW        float64 // screen size in pixels
	ViewH        float64
	DeadzoneW    float64
	DeadzoneH    float64
	FollowLerp   float64
	ZoomLerp     float64
	TilesVisible float64

	bounds   entity.Rect
	tileSize float64
}

// NewCamera creates a camera for a screen of viewW x viewH pixels
func NewCamera(cfg config.CameraConfig, viewW, viewH float64) *Camera {
	c := &Camera{
		Zoom:         1,
		Mode:         ParseCameraMode(cfg.Mode),
		ViewW:        viewW,
		ViewH:        viewH,
		DeadzoneW:    cfg.Deadzone.Width,
		DeadzoneH:    cfg.Deadzone.Height,
		FollowLerp:   cfg.FollowLerp,
		ZoomLerp:     cfg.ZoomLerp,
		TilesVisible: cfg.TilesVisible,
	}
	if c.FollowLerp <= 0 || c.FollowLerp > 1 {
		c.FollowLerp = 0.12
	}
	if c.ZoomLerp <= 0 || c.ZoomLerp > 1 {
		c.ZoomLerp = 1
	}
	return c
}

// SetBounds sets the level rectangle the view is clamped to
func (c *Camera) SetBounds(bounds entity.Rect, tileSize float64) {
	c.bounds = bounds
	c.tileSize = tileSize
}

// ViewSize returns the visible world size at the current zoom
func (c *Camera) ViewSize() (float64, float64) {
	return c.ViewW / c.Zoom, c.ViewH / c.Zoom
}

// View returns the visible world rectangle
func (c *Camera) View() entity.Rect {
	w, h := c.ViewSize()
	return entity.Rect{X: c.X, Y: c.Y, W: w, H: h}
}

// Update moves the camera toward the target for one tick
func (c *Camera) Update(target entity.Rect) {
	c.Zoom += (c.targetZoom() - c.Zoom) * c.ZoomLerp

	switch c.Mode {
	case CameraCenter:
		c.center(target)
	default:
		c.follow(target)
	}
	c.clamp()
}

// SnapTo centers the camera on the target immediately, at the target zoom
func (c *Camera) SnapTo(target entity.Rect) {
	c.Zoom = c.targetZoom()
	c.center(target)
	c.clamp()
}

// WorldToScreen converts world coordinates to screen pixels
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x - c.X) * c.Zoom, (y - c.Y) * c.Zoom
}

func (c *Camera) center(target entity.Rect) {
	w, h := c.ViewSize()
	c.X = target.CenterX() - w/2
	c.Y = target.CenterY() - h/2
}

func (c *Camera) follow(target entity.Rect) {
	w, h := c.ViewSize()
	goalX := c.X + deadzoneExcess(target.CenterX(), c.X+w/2, c.DeadzoneW/2)
	goalY := c.Y + deadzoneExcess(target.CenterY(), c.Y+h/2, c.DeadzoneH/2)

	c.X += (goalX - c.X) * c.FollowLerp
	c.Y += (goalY - c.Y) * c.FollowLerp
}

// deadzoneExcess returns how far p lies beyond [center-half, center+half]
func deadzoneExcess(p, center, half float64) float64 {
	switch {
	case p > center+half:
		return p - (center + half)
	case p < center-half:
		return p - (center - half)
	default:
		return 0
	}
}

func (c *Camera) targetZoom() float64 {
	if c.TilesVisible <= 0 || c.tileSize <= 0 {
		return 1
	}
	return c.ViewH / (c.TilesVisible * c.tileSize)
}

func (c *Camera) clamp() {
	if c.bounds.W <= 0 || c.bounds.H <= 0 {
		return
	}
	w, h := c.ViewSize()
	c.X = clampAxis(c.X, c.bounds.X, c.bounds.Right()-w)
	c.Y = clampAxis(c.Y, c.bounds.Y, c.bounds.Bottom()-h)
}

// clampAxis keeps v in [lo, hi]; a view larger than the level pins to lo
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
