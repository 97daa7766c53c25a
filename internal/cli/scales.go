package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/catalog"
)

// ScaleInfo describes one catalog entry.
type ScaleInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Index   uint8    `json:"index"`
	Pattern string   `json:"pattern"`
}

// NewScalesCommand creates the scales command.
func NewScalesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scales",
		Short:         "List the named scales and modes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScales(rootOpts, cmd)
		},
	}
	return cmd
}

func runScales(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var infos []ScaleInfo
	for _, e := range catalog.Entries() {
		var pattern strings.Builder
		for _, v := range e.Pattern {
			fmt.Fprintf(&pattern, "%d", v)
		}
		infos = append(infos, ScaleInfo{
			Name:    e.Name,
			Aliases: e.Aliases,
			Index:   e.Index,
			Pattern: pattern.String(),
		})
	}

	return formatter.Success(infos, func(w io.Writer) {
		for _, info := range infos {
			line := fmt.Sprintf("%2d  %-15s %s", info.Index, info.Name, info.Pattern)
			if len(info.Aliases) > 0 {
				line += "  (" + strings.Join(info.Aliases, ", ") + ")"
			}
			fmt.Fprintln(w, line)
		}
	})
}
