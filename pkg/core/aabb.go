package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Interval returns the parameter range [tNear, tFar] over which the ray is
// inside the box, using the slab method.
//
// A zero direction component (either sign) is folded to +0, so the division
// yields ±Inf, or NaN when the origin lies on a slab plane. Every comparison
// against NaN is false, so such an axis neither rejects the ray nor narrows
// the interval.
func (aabb AABB) Interval(ray Ray) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0: // X axis
			min = aabb.Min.X
			max = aabb.Max.X
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1: // Y axis
			min = aabb.Min.Y
			max = aabb.Max.Y
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2: // Z axis
			min = aabb.Min.Z
			max = aabb.Max.Z
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		if direction == 0 {
			direction = 0 // -0 would flip the sign of the infinities
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction

		// Ensure t1 <= t2 (swap if needed)
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		// Disjoint with the interval collected so far
		if tNear > t2 || t1 > tFar {
			return 0, 0, false
		}

		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
	}

	return tNear, tFar, true
}

// FaceNormal returns the outward normal of the first face whose plane lies
// within epsilon of p, checking -X, +X, -Y, +Y, -Z, +Z in that order.
// If no face matches, the zero vector is returned.
func (aabb AABB) FaceNormal(p Vec3, epsilon float64) Vec3 {
	switch {
	case math.Abs(p.X-aabb.Min.X) < epsilon:
		return NewVec3(-1, 0, 0)
	case math.Abs(p.X-aabb.Max.X) < epsilon:
		return NewVec3(1, 0, 0)
	case math.Abs(p.Y-aabb.Min.Y) < epsilon:
		return NewVec3(0, -1, 0)
	case math.Abs(p.Y-aabb.Max.Y) < epsilon:
		return NewVec3(0, 1, 0)
	case math.Abs(p.Z-aabb.Min.Z) < epsilon:
		return NewVec3(0, 0, -1)
	case math.Abs(p.Z-aabb.Max.Z) < epsilon:
		return NewVec3(0, 0, 1)
	}
	return Vec3{}
}
