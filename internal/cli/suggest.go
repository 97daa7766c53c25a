package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/suggest"
)

// SuggestionInfo is one ranked continuation.
type SuggestionInfo struct {
	Chord      string  `json:"chord"`
	Hex        string  `json:"hex"`
	Numeral    string  `json:"numeral"`
	Weight     int64   `json:"weight"`
	Complexity float64 `json:"complexity"`
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	cf := &chordFlags{}
	var (
		storePath string
		scaleName string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest continuations of a chord from a progression store",
		Long: `Rank observed continuations of a chord by frequency, with Roman
numeral and complexity attached to each suggestion.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(rootOpts, cf, storePath, scaleName, limit, cmd)
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&storePath, "store", "harmonia.db", "progression store path")
	cmd.Flags().StringVar(&scaleName, "scale", "major", "primary scale name")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum suggestions (0 for all)")
	return cmd
}

func runSuggest(opts *RootOptions, cf *chordFlags, storePath, scaleName string, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	chord, err := cf.build()
	if err != nil {
		return failDomain(formatter, err)
	}

	store, err := suggest.Open(storePath)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "failed to open progression store", Err: err}
	}
	defer store.Close()

	engine := suggest.NewEngine(store)
	suggestions, err := engine.Suggest(cmd.Context(), chord, scaleName, limit)
	if err != nil {
		return failDomain(formatter, err)
	}
	formatter.VerboseLog("%d continuation(s) for %s", len(suggestions), chord)

	infos := make([]SuggestionInfo, len(suggestions))
	for i, s := range suggestions {
		infos[i] = SuggestionInfo{
			Chord:      s.Chord.String(),
			Hex:        s.Hex,
			Numeral:    s.Numeral,
			Weight:     s.Weight,
			Complexity: s.Complexity,
		}
	}

	return formatter.Success(infos, func(w io.Writer) {
		if len(infos) == 0 {
			fmt.Fprintln(w, "no suggestions")
			return
		}
		for _, info := range infos {
			fmt.Fprintf(w, "%-8s weight=%d complexity=%.2f  %s\n",
				info.Numeral, info.Weight, info.Complexity, info.Hex)
		}
	})
}
