package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM writes img as a plain-text (P3) portable pixmap: a magic line, a
// dimensions line, the max value, then one "r g b" line per pixel starting
// from the top scanline
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	// bufio.Writer keeps the first error, so checking Flush is enough
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM image: %w", err)
	}
	return nil
}
