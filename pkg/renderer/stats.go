package renderer

import "github.com/df07/go-raycaster/pkg/integrator"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int // Total number of pixels rendered
	LitPixels        int // Pixels whose surface could see the light
	ShadowedPixels   int // Pixels whose surface was occluded from the light
	BackgroundPixels int // Pixels whose ray hit nothing
}

// AddOutcome records the shading outcome of one pixel
func (rs *RenderStats) AddOutcome(outcome integrator.Outcome) {
	rs.TotalPixels++
	switch outcome {
	case integrator.OutcomeLit:
		rs.LitPixels++
	case integrator.OutcomeShadowed:
		rs.ShadowedPixels++
	case integrator.OutcomeBackground:
		rs.BackgroundPixels++
	}
}

// HitPixels returns the number of pixels whose primary ray hit a surface
func (rs RenderStats) HitPixels() int {
	return rs.LitPixels + rs.ShadowedPixels
}
