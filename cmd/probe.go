package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/brot/internal/domain"
)

var probeLimitFlag int

// probeCmd represents the probe command.
var probeCmd = newProbeCmd()

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe RE,IM",
		Short: "Evaluate a single point of the complex plane",
		Long:  probeLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			point, ok := domain.ParseComplex(args[0])
			if !ok {
				return fmt.Errorf("invalid point %q, expected RE,IM", args[0])
			}

			if probeLimitFlag < 0 {
				return fmt.Errorf("limit must be non-negative, got %d", probeLimitFlag)
			}

			return workflow.Probe(domain.ProbeArgs{
				Point: point,
				Limit: probeLimitFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&probeLimitFlag, "limit", "n", 255, "iteration budget")

	return cmd
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
