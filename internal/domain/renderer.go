package domain

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/brot/internal/model"
)

// RenderSpec describes one rendering: the pixel frame, the viewport of the
// complex plane it covers, and the iteration budget per point.
type RenderSpec struct {
	Frame m.Frame
	View  m.Viewport
	Limit int
}

// BandFunc is called once per completed band with the rows [top, bottom) of
// the rendering filled in. It may be called from multiple goroutines.
type BandFunc func(r *m.Rendering, top, bottom int)

// Renderer computes escape times for every pixel of a frame.
type Renderer interface {
	Render(ctx context.Context, spec RenderSpec, threads int, onBand BandFunc) (*m.Rendering, error)
}

// bandRows is the height of one unit of work. Small enough to keep workers
// busy on uneven regions, large enough to keep scheduling cheap.
const bandRows = 16

type bandRenderer struct{}

// NewBandRenderer constructs a Renderer that splits the frame into
// horizontal bands and renders them concurrently.
func NewBandRenderer() Renderer {
	return &bandRenderer{}
}

// Render fills a rendering band by band, running at most threads bands at
// once (one worker per CPU when threads <= 0). The output is deterministic
// regardless of thread count: each band writes only its own rows.
func (br *bandRenderer) Render(ctx context.Context, spec RenderSpec, threads int, onBand BandFunc) (*m.Rendering, error) {
	if spec.Frame.Width <= 0 || spec.Frame.Height <= 0 {
		return nil, fmt.Errorf("invalid frame %dx%d", spec.Frame.Width, spec.Frame.Height)
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	rendering := m.NewRendering(spec.Frame, spec.View, spec.Limit)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for top := 0; top < spec.Frame.Height; top += bandRows {
		top := top
		bottom := min(top+bandRows, spec.Frame.Height)

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for y := top; y < bottom; y++ {
				row := rendering.Row(y)
				for x := range row {
					row[x] = EscapeTime(PixelToPoint(spec.Frame, x, y, spec.View), spec.Limit)
				}
			}

			if onBand != nil {
				onBand(rendering, top, bottom)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return rendering, nil
}
