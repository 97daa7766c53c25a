package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/harmonia/internal/theory"
)

// chordFlags is the shared flag group for commands taking a chord.
type chordFlags struct {
	root        uint8
	extension   uint8
	inversion   uint8
	alterations []string
	suspensions []uint
	omissions   []uint
	adds        []uint
	applied     uint8
	borrowed    string
}

func (cf *chordFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&cf.root, "root", 1, "root scale degree 1-7 (0 for a rest)")
	cmd.Flags().Uint8Var(&cf.extension, "extension", 5, "extension tier: 5, 7, 9, 11 or 13")
	cmd.Flags().Uint8Var(&cf.inversion, "inversion", 0, "inversion 0-3")
	cmd.Flags().StringSliceVar(&cf.alterations, "alter", nil, "alterations: b5, #5, b9, #9, #11, b13")
	cmd.Flags().UintSliceVar(&cf.suspensions, "sus", nil, "suspensions: 2 or 4")
	cmd.Flags().UintSliceVar(&cf.omissions, "omit", nil, "omissions: 3 or 5")
	cmd.Flags().UintSliceVar(&cf.adds, "add", nil, "add tones: 4, 6 or 9")
	cmd.Flags().Uint8Var(&cf.applied, "applied", 0, "applied target degree 1-7 (0 for none)")
	cmd.Flags().StringVar(&cf.borrowed, "borrowed", "", "borrowed scale name")
}

var alterationFlags = map[string]theory.Alteration{
	"b5":  theory.AltFlat5,
	"#5":  theory.AltSharp5,
	"b9":  theory.AltFlat9,
	"#9":  theory.AltSharp9,
	"#11": theory.AltSharp11,
	"b13": theory.AltFlat13,
}

// build assembles and validates the chord described by the flags.
func (cf *chordFlags) build() (theory.Chord, error) {
	c := theory.Chord{
		Root:      cf.root,
		Extension: theory.Extension(cf.extension),
		Inversion: cf.inversion,
		Applied:   cf.applied,
		Borrowed:  cf.borrowed,
	}
	for _, name := range cf.alterations {
		a, ok := alterationFlags[name]
		if !ok {
			return theory.Chord{}, flagError("alter", "unknown alteration %q", name)
		}
		c.Alterations |= theory.AlterationSet(a)
	}
	for _, s := range cf.suspensions {
		switch s {
		case 2:
			c.Suspensions |= theory.SuspensionSet(theory.Sus2)
		case 4:
			c.Suspensions |= theory.SuspensionSet(theory.Sus4)
		default:
			return theory.Chord{}, flagError("sus", "unknown suspension %d: must be 2 or 4", s)
		}
	}
	for _, o := range cf.omissions {
		switch o {
		case 3:
			c.Omissions |= theory.OmissionSet(theory.Omit3)
		case 5:
			c.Omissions |= theory.OmissionSet(theory.Omit5)
		default:
			return theory.Chord{}, flagError("omit", "unknown omission %d: must be 3 or 5", o)
		}
	}
	for _, a := range cf.adds {
		switch a {
		case 4:
			c.Adds |= theory.AddToneSet(theory.Add4)
		case 6:
			c.Adds |= theory.AddToneSet(theory.Add6)
		case 9:
			c.Adds |= theory.AddToneSet(theory.Add9)
		default:
			return theory.Chord{}, flagError("add", "unknown add tone %d: must be 4, 6 or 9", a)
		}
	}
	if err := c.Validate(); err != nil {
		return theory.Chord{}, err
	}
	return c, nil
}

// flagError reports a flag-vocabulary problem with the same kind the model
// uses for construction errors, so the envelope code stays consistent.
func flagError(field, format string, args ...any) error {
	return &theory.Error{
		Kind:    theory.KindInvalidConstruction,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
