// Command numeral converts integers to and from symbolic numeral
// representations: Roman numerals, letter numbering, and arbitrary
// bijective token alphabets.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/numeral/bijective"
	"github.com/katalvlaran/numeral/roman"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "numeral",
		Short: "Integer to numeral conversions and back",
		Long: `Numeral converts integers to symbolic numeral systems and back.

Supported systems:
  - Roman numerals, standard and extended (signed values, zero,
    additive-only notation, apostrophus and Claudian large numbers)
  - Letter numbering (spreadsheet columns: a, b, ..., z, aa, ...)
  - Bijective base-k over any ordered token alphabet`,
		Version: version,
	}

	rootCmd.AddCommand(romanCmd())
	rootCmd.AddCommand(lettersCmd())
	rootCmd.AddCommand(tokensCmd())
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func romanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roman",
		Short: "Roman numeral conversions",
	}
	cmd.AddCommand(romanEncodeCmd())
	cmd.AddCommand(romanDecodeCmd())

	return cmd
}

func romanEncodeCmd() *cobra.Command {
	var (
		ascii, additive, standardOnly   bool
		lowercase, apostrophus, archaic bool
		unsigned                        bool
		sign                            string
	)
	cmd := &cobra.Command{
		Use:   "encode <integer>",
		Short: "Encode an integer as a Roman numeral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			opts := roman.DefaultEncodeOptions()
			opts.OnlyASCII = ascii
			opts.OnlyAdditive = additive
			opts.Extended = !standardOnly
			opts.Uppercase = !lowercase
			opts.Claudian = !apostrophus
			opts.Archaic = archaic
			opts.Signed = !unsigned
			opts.NegativeSign = sign

			s, err := roman.Encode(n, &opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "transliterate output onto I V X L C D M")
	cmd.Flags().BoolVar(&additive, "additive", false, "forbid subtractive pairs (IIII instead of IV)")
	cmd.Flags().BoolVar(&standardOnly, "standard-range", false, "restrict to the standard 1..3999 range")
	cmd.Flags().BoolVar(&lowercase, "lowercase", false, "fold output to lowercase")
	cmd.Flags().BoolVar(&apostrophus, "apostrophus", false, "render large magnitudes with apostrophus glyphs")
	cmd.Flags().BoolVar(&archaic, "archaic", false, "substitute the archaic ligatures for 6 and 50")
	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "reject negative input")
	cmd.Flags().StringVar(&sign, "sign", "-", "sign prefix for negative values")

	return cmd
}

func romanDecodeCmd() *cobra.Command {
	var (
		strict bool
		sign   string
	)
	cmd := &cobra.Command{
		Use:   "decode <numeral>",
		Short: "Decode a Roman numeral into an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := roman.DefaultDecodeOptions()
			opts.Strict = strict
			opts.NegativeSign = sign

			n, err := roman.Decode(args[0], &opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "validate against the canonical 1..3999 grammar")
	cmd.Flags().StringVar(&sign, "sign", "-", "sign prefix for negative values")

	return cmd
}

func lettersCmd() *cobra.Command {
	var (
		alphabet string
		sign     string
	)
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Letter numbering (spreadsheet columns)",
	}

	encode := &cobra.Command{
		Use:   "encode <integer>",
		Short: "Encode an integer as letters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			s, err := bijective.EncodeLetters(n, alphabet, sign)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
	decode := &cobra.Command{
		Use:   "decode <text>",
		Short: "Decode letters into an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bijective.DecodeLetters(args[0], alphabet, sign)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&alphabet, "alphabet", "", "alphabet to use (default: 26 lowercase letters)")
	cmd.PersistentFlags().StringVar(&sign, "sign", "-", "sign prefix for negative values")
	cmd.AddCommand(encode, decode)

	return cmd
}

func tokensCmd() *cobra.Command {
	var (
		tokens string
		sign   string
	)
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Bijective base-k over a custom token alphabet",
	}

	encode := &cobra.Command{
		Use:   "encode <integer>",
		Short: "Encode an integer as a token sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			s, err := bijective.Encode(n, splitTokens(tokens), sign)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
	decode := &cobra.Command{
		Use:   "decode <text>",
		Short: "Decode a token sequence into an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bijective.Decode(args[0], splitTokens(tokens), sign)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&tokens, "tokens", "", "comma-separated ordered token alphabet (e.g. po,ta)")
	cmd.PersistentFlags().StringVar(&sign, "sign", "-", "sign prefix for negative values")
	cmd.AddCommand(encode, decode)

	return cmd
}

// splitTokens parses the --tokens flag into the ordered alphabet.
func splitTokens(flag string) []string {
	if flag == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
