package geometry

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"gonum.org/v1/gonum/floats/scalar"
)

var testMaterial = material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5))

// assertVecNear fails the test if got and want differ by more than tolerance on any axis
func assertVecNear(t *testing.T, label string, got, want core.Vec3, tolerance float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, want.X, tolerance) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, tolerance) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, tolerance) {
		t.Errorf("Expected %s %v, got %v", label, want, got)
	}
}

// assertOpposesRay checks the front-face convention: the reported normal never points along the ray
func assertOpposesRay(t *testing.T, hit *HitRecord, ray core.Ray) {
	t.Helper()
	if d := hit.Normal.Dot(ray.Direction); d > 0 {
		t.Errorf("Expected normal %v to oppose ray direction %v, dot=%f", hit.Normal, ray.Direction, d)
	}
}
