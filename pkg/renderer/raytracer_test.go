package renderer

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/integrator"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// testScene implements Scene for testing
type testScene struct {
	camera     *Camera
	world      *geometry.World
	light      lights.Light
	background lights.Background
}

func (s *testScene) GetCamera() *Camera               { return s.camera }
func (s *testScene) GetWorld() *geometry.World        { return s.world }
func (s *testScene) GetLight() lights.Light           { return s.light }
func (s *testScene) GetBackground() lights.Background { return s.background }

// testLogger implements core.Logger by collecting messages
type testLogger struct {
	messages []string
}

func (l *testLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// constantIntegrator returns the same colour for every ray
type constantIntegrator struct {
	color   core.Vec3
	outcome integrator.Outcome
}

func (c constantIntegrator) RayColor(ray core.Ray, scene integrator.Scene) (core.Vec3, integrator.Outcome) {
	return c.color, c.outcome
}

func newRedSphereScene() *testScene {
	red := material.NewMaterial(core.NewVec3(1, 0, 0))
	return &testScene{
		camera:     NewCamera(defaultTestCameraConfig()),
		world:      geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red)),
		light:      lights.NewDefaultPointLight(),
		background: lights.NewSkyBackground(),
	}
}

func TestRaytracer_RedSphereEndToEnd(t *testing.T) {
	// Odd dimensions put the middle pixel exactly on the optical axis
	const width, height = 161, 121
	scene := newRedSphereScene()
	logger := &testLogger{}
	raytracer := NewRaytracer(scene, width, height, logger)

	img, stats := raytracer.RenderPass()

	// Center pixel: red dominates, green and blue equal and near zero
	center := img.RGBAAt(width/2, height/2)
	if center.R <= center.G || center.R <= center.B {
		t.Errorf("Expected red to dominate center pixel, got %v", center)
	}
	if center.G != center.B || center.G > 5 {
		t.Errorf("Expected equal near-zero green/blue, got %v", center)
	}

	// Hit at (0,0,-0.5) with normal (0,0,1), lit from (10,14,10)
	toLight := core.NewVec3(10, 14, 10.5).Normalize()
	expectedCenter := vec3ToColor(core.NewVec3(math.Min(0.1+toLight.Z, 1), 0, 0))
	if center != expectedCenter {
		t.Errorf("Expected center pixel %v, got %v", expectedCenter, center)
	}

	// Top-left pixel misses the sphere and shows the sky
	dir := scene.camera.GetRay(0, 1).Direction
	unit := dir.Normalize()
	a := 0.5 * (unit.Y + 1.0)
	sky := core.NewVec3(1, 1, 1).Multiply(1 - a).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(a))
	if corner := img.RGBAAt(0, 0); corner != vec3ToColor(sky) {
		t.Errorf("Expected top-left sky pixel %v, got %v", vec3ToColor(sky), corner)
	}

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d pixels, got %d", width*height, stats.TotalPixels)
	}
	if stats.HitPixels()+stats.BackgroundPixels != stats.TotalPixels {
		t.Errorf("Outcome counts do not add up: %+v", stats)
	}
	if stats.LitPixels == 0 || stats.BackgroundPixels == 0 {
		t.Errorf("Expected both lit and background pixels, got %+v", stats)
	}
	if len(logger.messages) == 0 {
		t.Error("Expected raytracer to log progress")
	}
}

func TestRaytracer_RowOrder(t *testing.T) {
	// Top rows look up into the sky, which is bluer than the bottom rows
	scene := &testScene{
		camera:     NewCamera(defaultTestCameraConfig()),
		world:      geometry.NewWorld(),
		light:      lights.NewDefaultPointLight(),
		background: lights.NewSkyBackground(),
	}
	img, stats := NewRaytracer(scene, 8, 6, &testLogger{}).RenderPass()

	top := img.RGBAAt(4, 0)
	bottom := img.RGBAAt(4, 5)
	if top.R >= bottom.R {
		t.Errorf("Expected top row to be bluer (less red) than bottom, got top=%v bottom=%v", top, bottom)
	}
	if stats.BackgroundPixels != 48 {
		t.Errorf("Expected 48 background pixels, got %d", stats.BackgroundPixels)
	}
}

func TestRaytracer_SetIntegrator(t *testing.T) {
	raytracer := NewRaytracer(newRedSphereScene(), 3, 2, &testLogger{})
	raytracer.SetIntegrator(constantIntegrator{color: core.NewVec3(0.5, 1, 0), outcome: integrator.OutcomeShadowed})

	img, stats := raytracer.RenderPass()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := img.RGBAAt(x, y); got.R != 127 || got.G != 255 || got.B != 0 || got.A != 255 {
				t.Errorf("Pixel (%d,%d): expected (127,255,0,255), got %v", x, y, got)
			}
		}
	}
	if stats.ShadowedPixels != 6 {
		t.Errorf("Expected 6 shadowed pixels, got %d", stats.ShadowedPixels)
	}
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		value    float64
		expected uint8
	}{
		{0, 0},
		{0.5, 127},
		{1.0 / 255.0, 1},
		{0.999, 255},
		{1, 255},
	}

	for _, tt := range tests {
		got := vec3ToColor(core.NewVec3(tt.value, tt.value, tt.value))
		if got.R != tt.expected || got.G != tt.expected || got.B != tt.expected {
			t.Errorf("vec3ToColor(%f): expected %d, got %v", tt.value, tt.expected, got)
		}
	}
}

func TestNormalizedCoord(t *testing.T) {
	if got := normalizedCoord(0, 1); got != 0 {
		t.Errorf("Expected 0 for single-pixel axis, got %f", got)
	}
	if got := normalizedCoord(4, 5); got != 1 {
		t.Errorf("Expected 1 for last pixel, got %f", got)
	}
	if got := normalizedCoord(2, 5); got != 0.5 {
		t.Errorf("Expected 0.5 for middle pixel, got %f", got)
	}
}
