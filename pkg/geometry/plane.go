package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// parallelThreshold is the largest |normal·direction| treated as a ray
// running parallel to the plane.
const parallelThreshold = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal vector
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane. Unlike the other shapes,
// both ends of the interval are inclusive.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) <= parallelThreshold {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: &p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
