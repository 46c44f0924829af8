package main

import (
	"io"

	"github.com/clipperhouse/displaywidth"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	clierrors "github.com/musher-dev/basictext/internal/errors"
	"github.com/musher-dev/basictext/internal/output"
)

// statsReport is the JSON shape for 'basictext stats'.
type statsReport struct {
	Bytes            int `json:"bytes"`
	Runes            int `json:"runes"`
	GraphemeClusters int `json:"grapheme_clusters"`
	DisplayWidth     int `json:"display_width"`
}

func newStatsCmd() *cobra.Command {
	var eastAsianWidth bool

	cmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Report grapheme-cluster counts and terminal display width",
		Long: `Stats reads input (a file path, or stdin when omitted or "-") and
reports its size in bytes, scalar values, user-perceived grapheme
clusters, and terminal display width.

Stats does not validate or convert; run it on already-converted output
to measure what a terminal will actually render.`,
		Example: `  basictext stats input.txt
  basictext convert input.txt | basictext stats`,
		Args: atMostOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return clierrors.UnderlyingIOFailed("read input", err)
			}
			text := string(data)

			widthOpts := displaywidth.Options{EastAsianWidth: eastAsianWidth}

			report := statsReport{
				Bytes:            len(data),
				Runes:            countRunes(text),
				GraphemeClusters: uniseg.GraphemeClusterCount(text),
				DisplayWidth:     widthOpts.String(text),
			}

			if out.JSON {
				return out.PrintJSON(report)
			}

			out.Print("bytes:             %d\n", report.Bytes)
			out.Print("scalar values:     %d\n", report.Runes)
			out.Print("grapheme clusters: %d\n", report.GraphemeClusters)
			out.Print("display width:     %d\n", report.DisplayWidth)

			return nil
		},
	}

	cmd.Flags().BoolVar(&eastAsianWidth, "east-asian-width", false, "Treat ambiguous-width scalars as wide")

	return cmd
}

func countRunes(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
