// Package model defines the value types shared across brot.
package model

// Path represents a file system path.
type Path string

// Escape is the outcome of evaluating a single point: either the point left
// the circle of radius two at a specific iteration, or the iteration budget
// ran out without proof of divergence.
type Escape struct {
	// Iteration is the 0-based index of the iteration at which the point
	// escaped. Meaningless when Escaped is false.
	Iteration int
	// Escaped is false when the result is inconclusive: the point may
	// belong to the Mandelbrot set.
	Escaped bool
}

// Frame is the pixel dimensions of a rendered image.
type Frame struct {
	Width  int
	Height int
}

// Pixels returns the total number of pixels in the frame.
func (f Frame) Pixels() int {
	return f.Width * f.Height
}

// Viewport is the rectangle of the complex plane covered by a frame.
// It follows image orientation: the imaginary part decreases from
// UpperLeft down to LowerRight.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Width returns the real-axis span of the viewport.
func (v Viewport) Width() float64 {
	return real(v.LowerRight) - real(v.UpperLeft)
}

// Height returns the imaginary-axis span of the viewport.
func (v Viewport) Height() float64 {
	return imag(v.UpperLeft) - imag(v.LowerRight)
}
