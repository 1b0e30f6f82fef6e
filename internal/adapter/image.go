// Package adapter provides the side-effecting collaborators of the
// rendering workflow: image encoding and file output.
package adapter

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	m "github.com/mouse-blink/brot/internal/model"
)

// ImageWriter turns an escape-time buffer into grayscale PNG output.
type ImageWriter interface {
	Encode(w io.Writer, r *m.Rendering) error
	WriteFile(path m.Path, r *m.Rendering) error
}

type pngWriter struct{}

// NewPNGWriter constructs an ImageWriter that encodes renderings as
// 8-bit grayscale PNG.
func NewPNGWriter() ImageWriter {
	return &pngWriter{}
}

// Shade maps one escape result to a grayscale value. Points that never
// escaped are black; fast escapes are near white, slow escapes darker.
// Escaped points are clamped above zero so they never blend into the set.
func Shade(e m.Escape) uint8 {
	if !e.Escaped {
		return 0
	}

	if e.Iteration >= 255 {
		return 1
	}

	return uint8(255 - e.Iteration)
}

// Encode writes the rendering to w as a PNG image.
func (pw *pngWriter) Encode(w io.Writer, r *m.Rendering) error {
	img := image.NewGray(image.Rect(0, 0, r.Frame.Width, r.Frame.Height))

	for y := 0; y < r.Frame.Height; y++ {
		for x, e := range r.Row(y) {
			img.SetGray(x, y, color.Gray{Y: Shade(e)})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}

// WriteFile encodes the rendering into a file at path, creating or
// truncating it.
func (pw *pngWriter) WriteFile(path m.Path, r *m.Rendering) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := pw.Encode(f, r); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
