package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	snostyle "github.com/claradima/plotting-stuff"
)

func stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Print the style bundle attribute values",
		RunE: func(cmd *cobra.Command, args []string) error {
			th := snostyle.SansTheme()
			bundles := []struct {
				role   string
				bundle snostyle.AesMapping
			}{
				{"histogram", th.HistStyle},
				{"scatter", th.PointStyle},
				{"errorbar", th.ErrorBarStyle},
				{"line", th.LineStyle},
				{"watermark", th.WatermarkStyle},
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, b := range bundles {
				for _, attr := range b.bundle.Attributes() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", b.role, attr, b.bundle[attr])
				}
			}
			return w.Flush()
		},
	}
}
