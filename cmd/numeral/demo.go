package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numeral/bijective"
	"github.com/katalvlaran/numeral/roman"
)

// demoValues spans zero, the subtractive forms, letter rollover points
// and the extended range.
var demoValues = []int64{0, 4, 9, 23, 26, 44, 99, 702, 1666, 1983, 3999, 4000, 16384, 100000}

func demoCmd() *cobra.Command {
	var apostrophus bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a showcase table across the numeral systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			ascii := roman.DefaultEncodeOptions()
			ascii.OnlyASCII = true

			large := roman.DefaultEncodeOptions()
			large.Claudian = !apostrophus

			rows := pterm.TableData{
				{"Integer", "Letters", "Roman", "Roman (ASCII)"},
			}
			for _, n := range demoValues {
				letters, err := bijective.EncodeLetters(n, "", "")
				if err != nil {
					return err
				}
				uni, err := roman.Encode(n, &large)
				if err != nil {
					return err
				}
				flat, err := roman.Encode(n, &ascii)
				if err != nil {
					return err
				}
				rows = append(rows, []string{strconv.FormatInt(n, 10), letters, uni, flat})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
	cmd.Flags().BoolVar(&apostrophus, "apostrophus", false, "render large magnitudes with apostrophus glyphs")

	return cmd
}
