// Package units converts physics-space coordinates (meters) into scene-space
// render units through a fixed linear scale.
package units

import (
	"github.com/san-kum/orbitviz/internal/orbit"
	"github.com/san-kum/orbitviz/internal/scene"
)

// DefaultScale maps distances of order 1e11 m (planetary orbits) to
// single-digit scene units.
const DefaultScale = 1e-11

// Converter is a pure scale map. The same converter must be applied to every
// body every frame so relative distances stay consistent and trails remain
// continuous.
type Converter struct {
	scale float64
}

func NewConverter(scale float64) Converter {
	if scale == 0 {
		scale = DefaultScale
	}
	return Converter{scale: scale}
}

// ToScene maps a physics-space point into scene space. The orbital plane
// lands in the scene's XY plane.
func (c Converter) ToScene(p orbit.Vec2) scene.Vec3 {
	return scene.Vec3{X: p.X * c.scale, Y: p.Y * c.scale}
}

func (c Converter) Scale() float64 { return c.scale }
