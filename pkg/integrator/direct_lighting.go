package integrator

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

const (
	// AmbientFactor is the fraction of surface colour present even without light
	AmbientFactor = 0.1

	// RayEpsilon is the minimum t for primary and shadow rays; it keeps a
	// shadow ray from re-hitting the surface it starts on
	RayEpsilon = 0.001
)

// DirectLightingIntegrator shades the first hit with ambient plus Lambert
// diffuse from a single light, and a hard shadow test. There are no bounces.
type DirectLightingIntegrator struct{}

// NewDirectLightingIntegrator creates a new direct lighting integrator
func NewDirectLightingIntegrator() *DirectLightingIntegrator {
	return &DirectLightingIntegrator{}
}

// RayColor implements the Integrator interface
func (dl *DirectLightingIntegrator) RayColor(ray core.Ray, scene Scene) (core.Vec3, Outcome) {
	hit, isHit := scene.GetWorld().Hit(ray, RayEpsilon, math.Inf(1))
	if !isHit {
		return scene.GetBackground().Emit(ray), OutcomeBackground
	}
	return dl.shade(hit, scene)
}

// shade computes the colour at a surface hit.
// Any occluder along the shadow ray, even beyond the light, puts the point in
// full shadow.
func (dl *DirectLightingIntegrator) shade(hit *geometry.HitRecord, scene Scene) (core.Vec3, Outcome) {
	surfaceColor := hit.Material.Color
	lightSample := scene.GetLight().Sample(hit.Point)

	shadowRay := core.NewRay(hit.Point, lightSample.Direction)
	if _, occluded := scene.GetWorld().Hit(shadowRay, RayEpsilon, math.Inf(1)); occluded {
		return surfaceColor.Multiply(AmbientFactor), OutcomeShadowed
	}

	diffuse := math.Max(hit.Normal.Dot(lightSample.Direction), 0)
	color := surfaceColor.Multiply(AmbientFactor + diffuse)

	// Clip over-bright channels
	return color.Min(core.NewVec3(1, 1, 1)), OutcomeLit
}
