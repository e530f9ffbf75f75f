package scene

import (
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// DefaultPresetIndex is the scene used when no valid index is given
const DefaultPresetIndex = 1

// presets maps CLI indices to scene constructors
var presets = map[int]struct {
	name   string
	create func() *Scene
}{
	1: {"red sphere", NewRedSphereScene},
	2: {"cube on plane", NewCubePlaneScene},
	3: {"mixed primitives", NewMixedScene},
	4: {"mixed primitives, side view", NewMixedSideViewScene},
}

var (
	red    = material.NewMaterial(core.NewVec3(1.0, 0.0, 0.0))
	green  = material.NewMaterial(core.NewVec3(0.0, 1.0, 0.0))
	blue   = material.NewMaterial(core.NewVec3(0.0, 0.0, 1.0))
	yellow = material.NewMaterial(core.NewVec3(1.0, 1.0, 0.0))
	brown  = material.NewMaterial(core.NewVec3(0.75, 0.5, 0.5))
)

// frontCameraConfig looks from the origin straight down -Z
func frontCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: DefaultAspectRatio,
	}
}

// NewRedSphereScene creates a single red sphere in front of the camera
func NewRedSphereScene() *Scene {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red),
	)
	return NewScene(world, frontCameraConfig())
}

// NewCubePlaneScene creates a blue cube resting above a green ground plane
func NewCubePlaneScene() *Scene {
	world := geometry.NewWorld(
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), green),
		geometry.NewCube(core.NewVec3(-0.25, -0.25, -0.75), core.NewVec3(0.25, 0.25, -0.25), blue),
	)
	return NewScene(world, frontCameraConfig())
}

// newMixedWorld builds the world shared by the mixed primitive scenes
func newMixedWorld() *geometry.World {
	return geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-0.6, -1.0, -0.5), 0.7, brown),
		// Stack of small spheres
		geometry.NewSphere(core.NewVec3(-0.6, 0.0, -0.5), 0.1, brown),
		geometry.NewSphere(core.NewVec3(-0.6, 0.3, -0.5), 0.1, brown),
		geometry.NewSphere(core.NewVec3(-0.6, 0.6, -0.5), 0.1, brown),
		geometry.NewSphere(core.NewVec3(-0.6, 0.9, -0.5), 0.1, brown),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), green),
		geometry.NewCube(core.NewVec3(-2, -0.3, -2), core.NewVec3(-1, 0.7, -1), blue),
		geometry.NewCylinder(core.NewVec3(1, -0.5, -2), 0.5, 1.5, yellow),
	)
}

// NewMixedScene creates a scene with every primitive type
func NewMixedScene() *Scene {
	return NewScene(newMixedWorld(), renderer.CameraConfig{
		Center:      core.NewVec3(0.2, 0, 0.1),
		LookAt:      core.NewVec3(-0.1, 0.15, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: DefaultAspectRatio,
	})
}

// NewMixedSideViewScene shows the mixed scene from a raised position on the left
func NewMixedSideViewScene() *Scene {
	return NewScene(newMixedWorld(), renderer.CameraConfig{
		Center:      core.NewVec3(-1, 0.55, 0.7),
		LookAt:      core.NewVec3(-0.65, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        75.0,
		AspectRatio: DefaultAspectRatio,
	})
}

// Preset returns the scene registered under index. Unknown indices fall back
// to the default scene and report false.
func Preset(index int) (*Scene, bool) {
	preset, ok := presets[index]
	if !ok {
		return presets[DefaultPresetIndex].create(), false
	}
	return preset.create(), true
}

// PresetName returns a short description of the scene at index
func PresetName(index int) string {
	if preset, ok := presets[index]; ok {
		return preset.name
	}
	return presets[DefaultPresetIndex].name
}

// ParseIndex converts a CLI argument into a preset index. Unparseable input
// yields DefaultPresetIndex and false.
func ParseIndex(arg string) (int, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return DefaultPresetIndex, false
	}
	return index, true
}
