package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// faceEpsilon is the distance within which a hit point is considered to lie
// on a face plane.
const faceEpsilon = 1e-6

// Cube represents an axis-aligned box given by its min and max corners
type Cube struct {
	Bounds   core.AABB
	Material material.Material
}

// NewCube creates a new axis-aligned cube. min must be component-wise <= max.
func NewCube(min, max core.Vec3, mat material.Material) *Cube {
	return &Cube{
		Bounds:   core.NewAABB(min, max),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the cube.
//
// When the ray starts inside the box the exit point is reported. The normal
// is the first face within faceEpsilon of the hit point; for hits that match
// no face (numerically degenerate edges and corners) it is the zero vector.
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	tNear, tFar, ok := c.Bounds.Interval(ray)
	if !ok {
		return nil, false
	}

	t := tFar
	if tNear > tMin {
		t = tNear
	}
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: &c.Material,
	}
	hitRecord.SetFaceNormal(ray, c.Bounds.FaceNormal(hitRecord.Point, faceEpsilon))

	return hitRecord, true
}
