// Command snoplot renders the SNO+ plot style example figures.
//
// To see the style in action run
//	snoplot examples --style both --font Times_New_Roman_Normal.ttf
// which writes example1D_{Sans,Times}.pdf and
// example2D_{Sans,Times}.pdf to the output directory.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		slog.Error("snoplot failed", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "snoplot",
		Short:         "SNO+ collaboration plot style examples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(examplesCmd(), stylesCmd())
	return root
}
