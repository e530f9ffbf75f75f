package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using direct lighting
func NewRaytracer(scene Scene, width, height int, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		integrator: integrator.NewDirectLightingIntegrator(),
		logger:     logger,
	}
}

// SetIntegrator replaces the integrator used for shading
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// RenderPass renders the full image, scanning from the top row down
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()
	var stats RenderStats

	rt.logger.Printf("Rendering %dx%d image (%d shapes)...\n",
		rt.width, rt.height, rt.scene.GetWorld().Len())

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			s := normalizedCoord(i, rt.width)
			t := normalizedCoord(j, rt.height)

			colorVec, outcome := rt.integrator.RayColor(camera.GetRay(s, t), rt.scene)
			stats.AddOutcome(outcome)

			img.SetRGBA(i, rt.height-1-j, vec3ToColor(colorVec))
		}
	}

	return img, stats
}

// normalizedCoord maps pixel index i in [0, n-1] onto [0, 1]
func normalizedCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// vec3ToColor quantizes a [0,1] colour to 8 bits per channel by truncation
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(255.999 * colorVec.X),
		G: uint8(255.999 * colorVec.Y),
		B: uint8(255.999 * colorVec.Z),
		A: 255,
	}
}
