package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/codec"
	"github.com/calegray/harmonia/internal/suggest"
	"github.com/calegray/harmonia/internal/theory"
)

// RecordResult reports a persisted progression.
type RecordResult struct {
	Source      string `json:"source"`
	Chords      int    `json:"chords"`
	Transitions int    `json:"transitions"`
}

// NewRecordCommand creates the record command. Progressions are given as
// hex payloads so recorded data round-trips exactly through the codec.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		storePath  string
		sourceName string
	)

	cmd := &cobra.Command{
		Use:           "record <hex> <hex> [<hex>...]",
		Short:         "Record a chord progression in a progression store",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(rootOpts, storePath, sourceName, args, cmd)
		},
	}
	cmd.Flags().StringVar(&storePath, "store", "harmonia.db", "progression store path")
	cmd.Flags().StringVar(&sourceName, "source", "default", "progression source name")
	return cmd
}

func runRecord(opts *RootOptions, storePath, sourceName string, payloads []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	chords := make([]theory.Chord, len(payloads))
	for i, p := range payloads {
		c, err := codec.FromHex(p)
		if err != nil {
			return failDomain(formatter, err)
		}
		chords[i] = c
	}

	store, err := suggest.Open(storePath)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "failed to open progression store", Err: err}
	}
	defer store.Close()

	engine := suggest.NewEngine(store)
	if err := engine.RecordProgression(cmd.Context(), sourceName, chords); err != nil {
		return &ExitError{Code: ExitFailure, Message: "failed to record progression", Err: err}
	}

	result := RecordResult{
		Source:      sourceName,
		Chords:      len(chords),
		Transitions: len(chords) - 1,
	}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "recorded %d transition(s) under source %q\n", result.Transitions, result.Source)
	})
}
