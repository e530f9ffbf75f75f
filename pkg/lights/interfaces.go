package lights

import "github.com/df07/go-raycaster/pkg/core"

// Light interface for lights that can be sampled for direct lighting
type Light interface {
	// Sample returns the direction FROM the shading point TO the light
	Sample(point core.Vec3) LightSample
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Position of the light
	Direction core.Vec3 // Unit direction from shading point to light
}

// Background supplies the colour seen by rays that escape the scene
type Background interface {
	Emit(ray core.Ray) core.Vec3
}
