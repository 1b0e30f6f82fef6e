// Package controller provides output controllers for displaying render
// progress and results.
package controller

import (
	"time"

	m "github.com/mouse-blink/brot/internal/model"
)

// UI defines the interface for displaying the progress and results of a
// rendering run. Implementations can use different output methods
// (simple text, TUI, etc).
type UI interface {
	Start() error
	Close()
	DisplayRenderStart(frame m.Frame, view m.Viewport, limit, threads int)
	DisplayProgress(rowsDone, rowsTotal int)
	DisplayHistogram(buckets []m.Bucket, inconclusive, total int) error
	DisplayProbe(point complex128, limit int, escape m.Escape)
	DisplayDone(output m.Path, elapsed time.Duration)
}
