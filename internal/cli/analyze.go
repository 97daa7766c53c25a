package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/codec"
	"github.com/calegray/harmonia/internal/theory"
)

// AnalysisResult holds the full analysis of one chord in one scale.
type AnalysisResult struct {
	Scale      string   `json:"scale"`
	Degrees    []string `json:"degrees"`
	Numeral    string   `json:"numeral"`
	Symbol     string   `json:"symbol"`
	Figured    string   `json:"figured_bass,omitempty"`
	Complexity float64  `json:"complexity"`
	Hex        string   `json:"hex"`
	TritoneSub bool     `json:"tritone_sub"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	cf := &chordFlags{}
	var scaleName string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a chord in a scale",
		Long: `Analyze a chord in a scale: stable scale degrees, Roman numeral,
complexity score, hex wire encoding, and tritone-substitution eligibility.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(rootOpts, cf, scaleName, cmd)
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&scaleName, "scale", "major", "primary scale name")
	return cmd
}

func runAnalyze(opts *RootOptions, cf *chordFlags, scaleName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	chord, err := cf.build()
	if err != nil {
		return failDomain(formatter, err)
	}
	scale, err := theory.NamedScale(scaleName)
	if err != nil {
		return failDomain(formatter, err)
	}
	formatter.VerboseLog("analyzing %s in %s", chord, scaleName)

	degrees, err := theory.StableScaleDegrees(chord, scale)
	if err != nil {
		return failDomain(formatter, err)
	}
	numeral, err := theory.RomanNumeral(chord, scale)
	if err != nil {
		return failDomain(formatter, err)
	}
	score, err := theory.Complexity(chord, scaleName)
	if err != nil {
		return failDomain(formatter, err)
	}
	hex, err := codec.ToHex(chord)
	if err != nil {
		return failDomain(formatter, err)
	}

	result := AnalysisResult{
		Scale:      scaleName,
		Degrees:    degrees,
		Numeral:    numeral.String(),
		Symbol:     numeral.Symbol,
		Figured:    numeral.FiguredBass,
		Complexity: score,
		Hex:        hex,
		TritoneSub: theory.IsValidTritoneSub(chord, scaleName),
	}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "Numeral:    %s\n", result.Numeral)
		fmt.Fprintf(w, "Degrees:    %s\n", strings.Join(result.Degrees, " "))
		fmt.Fprintf(w, "Complexity: %.2f\n", result.Complexity)
		fmt.Fprintf(w, "Hex:        %s\n", result.Hex)
		if result.TritoneSub {
			fmt.Fprintln(w, "Eligible for tritone substitution")
		}
	})
}
