package model

// Rendering holds the escape result for every pixel of a frame, in
// row-major order.
type Rendering struct {
	Frame  Frame
	View   Viewport
	Limit  int
	Points []Escape
}

// NewRendering allocates a zeroed rendering for the given frame.
func NewRendering(frame Frame, view Viewport, limit int) *Rendering {
	return &Rendering{
		Frame:  frame,
		View:   view,
		Limit:  limit,
		Points: make([]Escape, frame.Pixels()),
	}
}

// At returns the escape result for the pixel at (x, y).
func (r *Rendering) At(x, y int) Escape {
	return r.Points[y*r.Frame.Width+x]
}

// Row returns the pixel row at y as a mutable slice.
func (r *Rendering) Row(y int) []Escape {
	start := y * r.Frame.Width
	return r.Points[start : start+r.Frame.Width]
}

// Bucket is one bar of an iteration histogram: the number of pixels that
// escaped at an iteration in [From, To).
type Bucket struct {
	From  int
	To    int
	Count int
}
