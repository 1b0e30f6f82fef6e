package domain

import (
	m "github.com/mouse-blink/brot/internal/model"
)

// PixelToPoint maps the pixel at (x, y) of a frame to the point it
// represents on the complex plane. Pixel rows grow downward while the
// imaginary axis grows upward, so the imaginary offset is subtracted.
func PixelToPoint(frame m.Frame, x, y int, view m.Viewport) complex128 {
	return complex(
		real(view.UpperLeft)+float64(x)*view.Width()/float64(frame.Width),
		imag(view.UpperLeft)-float64(y)*view.Height()/float64(frame.Height),
	)
}
