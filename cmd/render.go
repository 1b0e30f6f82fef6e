package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/brot/internal/domain"
)

var renderSizeFlag string
var renderUpperLeftFlag string
var renderLowerRightFlag string
var renderLimitFlag int
var renderParallelFlag int
var renderHistogramFlag bool

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [output.png]",
		Short: "Render the Mandelbrot set to a PNG image",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			spec, err := parseRenderSpec(renderSizeFlag, renderUpperLeftFlag, renderLowerRightFlag, renderLimitFlag)
			if err != nil {
				return err
			}

			return workflow.Render(domain.RenderArgs{
				Spec:      spec,
				Threads:   renderParallelFlag,
				Output:    outputPath(args),
				Histogram: renderHistogramFlag,
			})
		},
	}
	addRenderFlags(cmd,
		&renderSizeFlag, &renderUpperLeftFlag, &renderLowerRightFlag,
		&renderLimitFlag, &renderParallelFlag)
	addHistogramFlag(cmd, &renderHistogramFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
