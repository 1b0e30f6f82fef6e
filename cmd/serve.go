package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/brot/internal/dashboard"
)

var serveAddrFlag string
var serveSizeFlag string
var serveUpperLeftFlag string
var serveLowerRightFlag string
var serveLimitFlag int
var serveParallelFlag int

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live view of the rendering in the browser",
		Long:  serveLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			spec, err := parseRenderSpec(serveSizeFlag, serveUpperLeftFlag, serveLowerRightFlag, serveLimitFlag)
			if err != nil {
				return err
			}

			c.Printf("Serving live view on http://%s\n", serveAddrFlag)

			return dashboard.NewServer(serveAddrFlag, spec, serveParallelFlag).Start()
		},
	}
	cmd.Flags().StringVarP(&serveAddrFlag, "addr", "a", "localhost:8667", "listen address")
	addRenderFlags(cmd,
		&serveSizeFlag, &serveUpperLeftFlag, &serveLowerRightFlag,
		&serveLimitFlag, &serveParallelFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
