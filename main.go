package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	logger := renderer.NewDefaultLogger()

	arg := ""
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}

	if err := run(arg, os.Stdout, logger); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// selectScene resolves the CLI argument to a preset, falling back to the
// default scene for missing, unparseable or unknown indices
func selectScene(arg string, logger core.Logger) (*scene.Scene, int) {
	index, ok := scene.ParseIndex(arg)
	if !ok && arg != "" {
		logger.Printf("Invalid scene index %q, using scene %d\n", arg, scene.DefaultPresetIndex)
	}

	selected, known := scene.Preset(index)
	if !known {
		logger.Printf("Unknown scene index %d, using scene %d\n", index, scene.DefaultPresetIndex)
		index = scene.DefaultPresetIndex
	}

	logger.Printf("Using scene %d (%s)...\n", index, scene.PresetName(index))
	return selected, index
}

// run renders the selected scene and writes it to out as a PPM image
func run(arg string, out io.Writer, logger core.Logger) error {
	selected, _ := selectScene(arg, logger)

	raytracer := renderer.NewRaytracer(selected, selected.Width, selected.Height, logger)

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	logger.Printf("Render completed in %v\n", time.Since(startTime))
	logger.Printf("Pixels: %d total, %d lit, %d shadowed, %d background\n",
		stats.TotalPixels, stats.LitPixels, stats.ShadowedPixels, stats.BackgroundPixels)

	if err := renderer.WritePPM(out, img); err != nil {
		return fmt.Errorf("failed to output scene: %w", err)
	}
	return nil
}
