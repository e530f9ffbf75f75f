package material

import "github.com/df07/go-raycaster/pkg/core"

// Material describes how a surface looks. The raycaster only shades flat
// colours, so a material is just its colour.
type Material struct {
	Color core.Vec3 // RGB in [0,1]
}

// NewMaterial creates a material with a solid colour
func NewMaterial(color core.Vec3) Material {
	return Material{Color: color}
}
