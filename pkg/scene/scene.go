package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/renderer"
)

const (
	// DefaultWidth is the image width used by all preset scenes
	DefaultWidth = 800
	// DefaultAspectRatio is the image aspect ratio used by all preset scenes
	DefaultAspectRatio = 4.0 / 3.0
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.World    // Objects in the scene
	Light        *lights.PointLight // The single light
	Background   lights.Background  // Colour for rays that escape
	Width        int                // Image width
	Height       int                // Image height
}

// NewScene creates a scene with the preset light, sky and image size
func NewScene(world *geometry.World, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        world,
		Light:        lights.NewDefaultPointLight(),
		Background:   lights.NewSkyBackground(),
		Width:        DefaultWidth,
		Height:       int(float64(DefaultWidth) / cameraConfig.AspectRatio),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements integrator.Scene
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetLight implements integrator.Scene
func (s *Scene) GetLight() lights.Light {
	return s.Light
}

// GetBackground implements integrator.Scene
func (s *Scene) GetBackground() lights.Background {
	return s.Background
}
