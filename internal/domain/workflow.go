package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mouse-blink/brot/internal/adapter"
	"github.com/mouse-blink/brot/internal/controller"
	m "github.com/mouse-blink/brot/internal/model"
)

// RenderArgs holds the arguments for a full rendering run.
type RenderArgs struct {
	Spec      RenderSpec
	Threads   int
	Output    m.Path
	Histogram bool
	// HistogramBuckets is the number of bars; 0 means the default.
	HistogramBuckets int
}

// ProbeArgs holds the arguments for evaluating a single point.
type ProbeArgs struct {
	Point complex128
	Limit int
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Render(args RenderArgs) error
	Probe(args ProbeArgs) error
}

type workflow struct {
	renderer Renderer
	writer   adapter.ImageWriter
	ui       controller.UI
}

// NewWorkflow creates a Workflow wiring the renderer, the image writer and
// the UI together.
func NewWorkflow(renderer Renderer, writer adapter.ImageWriter, ui controller.UI) Workflow {
	return &workflow{
		renderer: renderer,
		writer:   writer,
		ui:       ui,
	}
}

// Render computes the escape time of every pixel, writes the grayscale PNG
// and optionally reports an iteration histogram.
func (w *workflow) Render(args RenderArgs) error {
	if err := w.ui.Start(); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRenderStart(args.Spec.Frame, args.Spec.View, args.Spec.Limit, args.Threads)

	// Bands complete on worker goroutines; progress updates are
	// serialized here so UI implementations stay single-threaded.
	var mu sync.Mutex

	rowsDone := 0
	onBand := func(_ *m.Rendering, top, bottom int) {
		mu.Lock()
		defer mu.Unlock()

		rowsDone += bottom - top
		w.ui.DisplayProgress(rowsDone, args.Spec.Frame.Height)
	}

	start := time.Now()

	rendering, err := w.renderer.Render(context.Background(), args.Spec, args.Threads, onBand)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := w.writer.WriteFile(args.Output, rendering); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	if args.Histogram {
		buckets, inconclusive := Histogram(rendering, args.HistogramBuckets)
		if err := w.ui.DisplayHistogram(buckets, inconclusive, rendering.Frame.Pixels()); err != nil {
			return err
		}
	}

	w.ui.DisplayDone(args.Output, time.Since(start))

	return nil
}

// Probe evaluates a single point and reports the outcome.
func (w *workflow) Probe(args ProbeArgs) error {
	w.ui.DisplayProbe(args.Point, args.Limit, EscapeTime(args.Point, args.Limit))

	return nil
}
