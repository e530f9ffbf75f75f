package lights

import "github.com/df07/go-raycaster/pkg/core"

// PointLight is an infinitely small light at a fixed position.
//
// Brightness is carried for scene descriptions but the shading model does not
// scale by it.
type PointLight struct {
	Position   core.Vec3
	Brightness float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, brightness float64) *PointLight {
	return &PointLight{
		Position:   position,
		Brightness: brightness,
	}
}

// NewDefaultPointLight returns the light used by all preset scenes
func NewDefaultPointLight() *PointLight {
	return NewPointLight(core.NewVec3(10, 14, 10), 1.0)
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	return LightSample{
		Point:     pl.Position,
		Direction: pl.Position.Subtract(point).Normalize(),
	}
}
