package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/brot/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. It is the
// non-interactive fallback for pipes and files.
type SimpleUI struct {
	cmd         *cobra.Command
	lastPercent int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, lastPercent: -1}
}

// Start initializes the UI for one rendering run.
func (s *SimpleUI) Start() error {
	s.lastPercent = -1

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayRenderStart prints the rendering parameters.
func (s *SimpleUI) DisplayRenderStart(frame m.Frame, view m.Viewport, limit, threads int) {
	workers := "one worker per CPU"
	if threads > 0 {
		workers = fmt.Sprintf("%d worker(s)", threads)
	}

	s.printf("Rendering %dx%d, %s to %s, limit %d, %s\n",
		frame.Width, frame.Height,
		formatComplex(view.UpperLeft), formatComplex(view.LowerRight),
		limit, workers)
}

// DisplayProgress prints progress in ten percent steps.
func (s *SimpleUI) DisplayProgress(rowsDone, rowsTotal int) {
	if rowsTotal <= 0 {
		return
	}

	percent := rowsDone * 100 / rowsTotal
	step := percent / 10 * 10

	if step > s.lastPercent {
		s.lastPercent = step
		s.printf("  %3d%% (%d/%d rows)\n", percent, rowsDone, rowsTotal)
	}
}

// DisplayHistogram prints the iteration distribution as a table.
func (s *SimpleUI) DisplayHistogram(buckets []m.Bucket, inconclusive, total int) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Iterations", "Pixels"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, b := range buckets {
		table.Append([]string{
			fmt.Sprintf("%d-%d", b.From, b.To-1),
			fmt.Sprintf("%d", b.Count),
		})
	}

	table.Append([]string{"inconclusive", fmt.Sprintf("%d", inconclusive)})
	table.SetFooter([]string{"Total Pixels", fmt.Sprintf("%d", total)})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayProbe prints the escape result for a single point.
func (s *SimpleUI) DisplayProbe(point complex128, limit int, escape m.Escape) {
	if escape.Escaped {
		s.printf("%s escaped at iteration %d\n", formatComplex(point), escape.Iteration)
		return
	}

	s.printf("%s is inconclusive after %d iteration(s)\n", formatComplex(point), limit)
}

// DisplayDone prints the output path and elapsed time.
func (s *SimpleUI) DisplayDone(output m.Path, elapsed time.Duration) {
	s.printf("Wrote %s in %s\n", output, elapsed.Round(time.Millisecond))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatComplex(c complex128) string {
	return fmt.Sprintf("(%g%+gi)", real(c), imag(c))
}
