package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is cosmetic debris. It has no collision role.
type ParticleData struct {
	Radius float64
	Color  color.RGBA
	Life   int // frames remaining
	Alpha  float32
	Fade   *gween.Tween // alpha over the particle's lifetime, advanced one frame per tick
}

var Particle = donburi.NewComponentType[ParticleData]()
