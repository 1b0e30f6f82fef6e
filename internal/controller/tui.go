package controller

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/brot/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display: a live
// progress bar while rendering, plain lines for everything else.
type TUI struct {
	output  io.Writer
	program *tea.Program
	runDone chan struct{}
	// extra program options, used by tests to supply a non-terminal input
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start() error {
	opts := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.programOptions...)
	t.program = tea.NewProgram(newRenderModel(), opts...)
	t.runDone = make(chan struct{})

	go func() {
		defer close(t.runDone)

		_, _ = t.program.Run()
	}()

	return nil
}

// quiesce stops the progress program and waits for it to finish. The
// program repaints its tracked lines on every animation frame and once
// more on quit, so nothing may be written to output directly while it is
// running. Safe to call repeatedly.
func (t *TUI) quiesce() {
	if t.program == nil {
		return
	}

	t.program.Send(renderDoneMsg{})
	<-t.runDone
	t.program = nil
}

// Close stops the progress program and waits for it to finish.
func (t *TUI) Close() {
	t.quiesce()
}

// DisplayRenderStart feeds the render parameters to the progress view.
func (t *TUI) DisplayRenderStart(frame m.Frame, view m.Viewport, limit, threads int) {
	if t.program == nil {
		return
	}

	t.program.Send(renderStartMsg{frame: frame, view: view, limit: limit, threads: threads})
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(rowsDone, rowsTotal int) {
	if t.program == nil {
		return
	}

	t.program.Send(renderProgressMsg{rowsDone: rowsDone, rowsTotal: rowsTotal})
}

// DisplayHistogram stops the progress program, then prints the iteration
// distribution.
func (t *TUI) DisplayHistogram(buckets []m.Bucket, inconclusive, total int) error {
	t.quiesce()

	for _, b := range buckets {
		_, _ = fmt.Fprintf(t.output, "%6d-%-6d %d\n", b.From, b.To-1, b.Count)
	}

	_, _ = fmt.Fprintf(t.output, "inconclusive %d of %d\n", inconclusive, total)

	return nil
}

// DisplayProbe prints the escape result for a single point.
func (t *TUI) DisplayProbe(point complex128, limit int, escape m.Escape) {
	t.quiesce()

	if escape.Escaped {
		_, _ = fmt.Fprintf(t.output, "%s escaped at iteration %d\n", formatComplex(point), escape.Iteration)
		return
	}

	_, _ = fmt.Fprintf(t.output, "%s is inconclusive after %d iteration(s)\n", formatComplex(point), limit)
}

// DisplayDone stops the progress program, then prints the output path and
// elapsed time.
func (t *TUI) DisplayDone(output m.Path, elapsed time.Duration) {
	t.quiesce()

	_, _ = fmt.Fprintf(t.output, "Wrote %s in %s\n", output, elapsed.Round(time.Millisecond))
}
