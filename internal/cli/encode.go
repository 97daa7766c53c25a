package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/codec"
)

// EncodeResult holds the wire encoding of a chord.
type EncodeResult struct {
	Hex   string `json:"hex"`
	Chord string `json:"chord"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	cf := &chordFlags{}

	cmd := &cobra.Command{
		Use:           "encode",
		Short:         "Encode a chord to its 10-character hex wire form",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, cf, cmd)
		},
	}
	cf.register(cmd)
	return cmd
}

func runEncode(opts *RootOptions, cf *chordFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	chord, err := cf.build()
	if err != nil {
		return failDomain(formatter, err)
	}
	hex, err := codec.ToHex(chord)
	if err != nil {
		return failDomain(formatter, err)
	}

	result := EncodeResult{Hex: hex, Chord: chord.String()}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintln(w, result.Hex)
	})
}
