package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// HitRecord contains information about a ray-object intersection.
// It is only valid for the duration of the query that produced it.
type HitRecord struct {
	Point     core.Vec3          // Point of intersection
	Normal    core.Vec3          // Surface normal, oriented against the incoming ray
	T         float64            // Parameter t along the ray
	FrontFace bool               // Whether ray hit the front face
	Material  *material.Material // Material of the shape that was hit (owned by the shape)
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection of this shape alone within (tMin, tMax);
// the exact treatment of the interval ends is up to each shape.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
