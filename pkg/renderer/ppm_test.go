package renderer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 12, G: 34, B: 56, A: 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM returned error: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"12 34 56\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%s\ngot:\n%s", expected, buf.String())
	}
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func TestWritePPM_PropagatesWriteError(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	err := WritePPM(failingWriter{}, img)
	if err == nil {
		t.Fatal("Expected error from failing writer, got nil")
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("Expected wrapped errDiskFull, got %v", err)
	}
}
