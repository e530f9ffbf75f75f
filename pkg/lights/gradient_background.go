package lights

import "github.com/df07/go-raycaster/pkg/core"

// GradientBackground blends vertically between two colours based on the
// ray's normalized y direction
type GradientBackground struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradientBackground creates a new gradient background
func NewGradientBackground(topColor, bottomColor core.Vec3) *GradientBackground {
	return &GradientBackground{
		TopColor:    topColor,
		BottomColor: bottomColor,
	}
}

// NewSkyBackground returns the pale blue to white sky used by all preset scenes
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0), // topColor (blue sky)
		core.NewVec3(1.0, 1.0, 1.0), // bottomColor (white horizon)
	)
}

// Emit implements the Background interface
func (gb *GradientBackground) Emit(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return gb.BottomColor.Multiply(1.0 - t).Add(gb.TopColor.Multiply(t))
}
