package geometry

import "github.com/df07/go-raycaster/pkg/core"

// World is an ordered list of shapes queried by linear scan.
// It must not be modified while rendering.
type World struct {
	shapes []Shape
}

// NewWorld creates a world containing the given shapes in order
func NewWorld(shapes ...Shape) *World {
	w := &World{shapes: make([]Shape, 0, len(shapes))}
	w.Add(shapes...)
	return w
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.shapes)
}

// Hit returns the nearest intersection across all shapes. When two shapes
// report the same t, the one added first wins.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		if !isHit {
			continue
		}
		// Shapes with an inclusive tMax can report a tie; keep the earlier one
		if closestHit == nil || hit.T < closestHit.T {
			closestHit = hit
			closestSoFar = hit.T
		}
	}

	return closestHit, closestHit != nil
}
