// Package cmd provides the root command and CLI setup for brot.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/brot/internal/adapter"
	"github.com/mouse-blink/brot/internal/controller"
	"github.com/mouse-blink/brot/internal/domain"
	m "github.com/mouse-blink/brot/internal/model"
)

var imageWriter adapter.ImageWriter
var renderer domain.Renderer
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	imageWriter = adapter.NewPNGWriter()
	renderer = domain.NewBandRenderer()
	workflow = domain.NewWorkflow(renderer, imageWriter, ui)
}

var sizeFlag string
var upperLeftFlag string
var lowerRightFlag string
var limitFlag int
var parallelFlag int
var histogramFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brot [output.png]",
		Short: "Mandelbrot set renderer",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			spec, err := parseRenderSpec(sizeFlag, upperLeftFlag, lowerRightFlag, limitFlag)
			if err != nil {
				return err
			}

			return workflow.Render(domain.RenderArgs{
				Spec:      spec,
				Threads:   parallelFlag,
				Output:    outputPath(args),
				Histogram: histogramFlag,
			})
		},
	}
	addRenderFlags(cmd,
		&sizeFlag, &upperLeftFlag, &lowerRightFlag,
		&limitFlag, &parallelFlag)
	addHistogramFlag(cmd, &histogramFlag)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// addRenderFlags registers the shared rendering flags on cmd, bound to the
// given per-command variables.
func addRenderFlags(cmd *cobra.Command, size, upperLeft, lowerRight *string, limit, parallel *int) {
	cmd.Flags().StringVarP(size, "size", "s", "1000x750", "image size in pixels in the format WIDTHxHEIGHT")
	cmd.Flags().StringVarP(upperLeft, "upper-left", "u", "-2.25,1.25", "upper left corner of the viewport in the format RE,IM")
	cmd.Flags().StringVarP(lowerRight, "lower-right", "l", "1.0,-1.25", "lower right corner of the viewport in the format RE,IM")
	cmd.Flags().IntVarP(limit, "limit", "n", 255, "iteration budget per point")
	cmd.Flags().IntVarP(parallel, "parallel", "p", 0, "number of parallel render workers (0 = one per CPU)")
}

// addHistogramFlag registers the histogram flag on the commands that write
// an image; serve has no use for it.
func addHistogramFlag(cmd *cobra.Command, histogram *bool) {
	cmd.Flags().BoolVar(histogram, "histogram", false, "print an iteration histogram after rendering")
}

// parseRenderSpec validates the rendering flags using the pair parsers.
func parseRenderSpec(size, upperLeft, lowerRight string, limit int) (domain.RenderSpec, error) {
	frame, ok := domain.ParseFrame(size)
	if !ok {
		return domain.RenderSpec{}, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", size)
	}

	ul, ok := domain.ParseComplex(upperLeft)
	if !ok {
		return domain.RenderSpec{}, fmt.Errorf("invalid upper-left corner %q, expected RE,IM", upperLeft)
	}

	lr, ok := domain.ParseComplex(lowerRight)
	if !ok {
		return domain.RenderSpec{}, fmt.Errorf("invalid lower-right corner %q, expected RE,IM", lowerRight)
	}

	if limit < 0 {
		return domain.RenderSpec{}, fmt.Errorf("limit must be non-negative, got %d", limit)
	}

	return domain.RenderSpec{
		Frame: frame,
		View:  m.Viewport{UpperLeft: ul, LowerRight: lr},
		Limit: limit,
	}, nil
}

func outputPath(args []string) m.Path {
	if len(args) == 1 {
		return m.Path(args[0])
	}

	return m.Path("mandelbrot.png")
}
