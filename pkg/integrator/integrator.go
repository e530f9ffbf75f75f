package integrator

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// Scene is the read-only view of a scene an integrator needs.
// Defined here to avoid an import cycle with the scene package.
type Scene interface {
	GetWorld() *geometry.World
	GetLight() lights.Light
	GetBackground() lights.Background
}

// Outcome records which shading branch produced a ray's colour
type Outcome int

const (
	OutcomeBackground Outcome = iota // Ray escaped the scene
	OutcomeLit                       // Surface visible from the light
	OutcomeShadowed                  // Surface occluded from the light
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBackground:
		return "background"
	case OutcomeLit:
		return "lit"
	case OutcomeShadowed:
		return "shadowed"
	}
	return "unknown"
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the colour seen along a primary ray
	RayColor(ray core.Ray, scene Scene) (core.Vec3, Outcome)
}
