package entity

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Oscillator produces a smooth back-and-forth offset in [0, amplitude].
// It alternates between a rising and a falling sine-eased tween.
type Oscillator struct {
	rise    *gween.Tween
	fall    *gween.Tween
	falling bool
}

// NewOscillator creates an oscillator with a full cycle of period seconds
func NewOscillator(amplitude, period float64) *Oscillator {
	half := float32(period / 2)
	if half <= 0 {
		half = 1
	}
	return &Oscillator{
		rise: gween.New(0, float32(amplitude), half, ease.InOutSine),
		fall: gween.New(float32(amplitude), 0, half, ease.InOutSine),
	}
}

// Update advances by dt seconds and returns the current offset
func (o *Oscillator) Update(dt float64) float64 {
	current := o.rise
	if o.falling {
		current = o.fall
	}
	v, done := current.Update(float32(dt))
	if done {
		current.Reset()
		o.falling = !o.falling
	}
	return float64(v)
}
