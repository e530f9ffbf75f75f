package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// capEpsilon decides whether a cap hit lies on the top or the bottom disc
const capEpsilon = 1e-6

// Cylinder represents a finite cylinder with flat caps, aligned to the Y axis
type Cylinder struct {
	Center   core.Vec3 // Center of the bottom cap
	Radius   float64
	Height   float64 // Extent along +Y from Center
	Material material.Material
}

// NewCylinder creates a new capped cylinder standing on center
func NewCylinder(center core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Center:   center,
		Radius:   radius,
		Height:   height,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the cylinder body or either cap,
// returning whichever is nearer. Both ends of (tMin, tMax) are exclusive.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	tBody := c.hitBody(ray, tMin, tMax)
	tCaps := c.hitCaps(ray, tMin, tMax)

	t := tCaps
	if tBody < tCaps {
		t = tBody
	}
	if math.IsInf(t, 0) {
		return nil, false
	}

	point := ray.At(t)
	hitRecord := &HitRecord{
		T:        t,
		Point:    point,
		Material: &c.Material,
	}
	hitRecord.SetFaceNormal(ray, c.outwardNormal(point, t == tCaps))

	return hitRecord, true
}

// hitBody returns the nearest valid t on the curved surface, or +Inf.
// Points exactly at the top or bottom height belong to the caps.
func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) float64 {
	tBody := math.Inf(1)

	// Quadratic in the XZ plane; the Y axis is ignored
	oc := ray.Origin.Subtract(c.Center)
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	b := 2.0 * (oc.X*ray.Direction.X + oc.Z*ray.Direction.Z)
	cc := oc.X*oc.X + oc.Z*oc.Z - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return tBody
	}

	// A ray parallel to the axis gives a == 0 and NaN roots, which fail
	// every comparison below.
	sqrtD := math.Sqrt(discriminant)
	for _, root := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		y := ray.Origin.Y + root*ray.Direction.Y
		if y > c.Center.Y && y < c.Center.Y+c.Height &&
			root > tMin && root < tMax && root < tBody {
			tBody = root
		}
	}

	return tBody
}

// hitCaps returns the nearest valid t on the top or bottom disc, or +Inf.
func (c *Cylinder) hitCaps(ray core.Ray, tMin, tMax float64) float64 {
	tCaps := math.Inf(1)

	for _, capY := range [2]float64{c.Center.Y + c.Height, c.Center.Y} {
		t := (capY - ray.Origin.Y) / ray.Direction.Y
		if !(t > tMin && t < tMax && t < tCaps) {
			continue
		}
		p := ray.At(t)
		dx := p.X - c.Center.X
		dz := p.Z - c.Center.Z
		if dx*dx+dz*dz <= c.Radius*c.Radius {
			tCaps = t
		}
	}

	return tCaps
}

// outwardNormal returns the geometric normal at p. For a body hit exactly on
// the axis the radial vector has zero length and the zero vector is returned.
func (c *Cylinder) outwardNormal(p core.Vec3, onCap bool) core.Vec3 {
	if onCap {
		if math.Abs(p.Y-(c.Center.Y+c.Height)) < capEpsilon {
			return core.NewVec3(0, 1, 0)
		}
		return core.NewVec3(0, -1, 0)
	}
	return core.NewVec3(p.X-c.Center.X, 0, p.Z-c.Center.Z).Normalize()
}
