package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/codec"
	"github.com/calegray/harmonia/internal/theory"
)

// DecodeResult holds a decoded chord's fields.
type DecodeResult struct {
	Chord       string   `json:"chord"`
	Root        uint8    `json:"root"`
	Extension   uint8    `json:"extension"`
	Inversion   uint8    `json:"inversion"`
	Alterations []string `json:"alterations,omitempty"`
	Suspensions []string `json:"suspensions,omitempty"`
	Omissions   []string `json:"omissions,omitempty"`
	Adds        []string `json:"adds,omitempty"`
	Applied     uint8    `json:"applied,omitempty"`
	Borrowed    string   `json:"borrowed,omitempty"`
	Rest        bool     `json:"rest"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "decode <hex>",
		Short:         "Decode a 10-character hex payload into a chord",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDecode(opts *RootOptions, payload string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	chord, err := codec.FromHex(payload)
	if err != nil {
		return failDomain(formatter, err)
	}

	result := decodeResult(chord)
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintln(w, result.Chord)
	})
}

func decodeResult(c theory.Chord) DecodeResult {
	return DecodeResult{
		Chord:       c.String(),
		Root:        c.Root,
		Extension:   uint8(c.Extension),
		Inversion:   c.Inversion,
		Alterations: c.Alterations.Names(),
		Suspensions: c.Suspensions.Names(),
		Omissions:   c.Omissions.Names(),
		Adds:        c.Adds.Names(),
		Applied:     c.Applied,
		Borrowed:    c.Borrowed,
		Rest:        c.IsRest(),
	}
}
