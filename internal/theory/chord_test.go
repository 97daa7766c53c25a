package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChord(t *testing.T) {
	tests := []struct {
		name    string
		root    uint8
		ext     Extension
		wantErr bool
	}{
		{"tonic_triad", 1, Triad, false},
		{"dominant_seventh", 5, Seventh, false},
		{"thirteenth", 2, Thirteenth, false},
		{"root_too_big", 8, Triad, true},
		{"bad_extension", 1, Extension(6), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChord(tt.root, tt.ext)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidConstruction(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestChordValidate(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
	}{
		{"rest_with_inversion", Chord{Root: 0, Extension: Triad, Inversion: 1}},
		{"rest_with_applied", Chord{Root: 0, Extension: Triad, Applied: 5}},
		{"inversion_beyond_tones", Chord{Root: 1, Extension: Triad, Inversion: 3}},
		{"inversion_beyond_wire_ceiling", Chord{Root: 1, Extension: Thirteenth, Inversion: 4}},
		{"flat5_sharp5_conflict", Chord{Root: 1, Extension: Triad,
			Alterations: AlterationSet(AltFlat5) | AlterationSet(AltSharp5)}},
		{"flat9_sharp9_conflict", Chord{Root: 1, Extension: Ninth,
			Alterations: AlterationSet(AltFlat9) | AlterationSet(AltSharp9)}},
		{"flat9_on_seventh", Chord{Root: 5, Extension: Seventh, Alterations: AlterationSet(AltFlat9)}},
		{"sharp11_on_ninth", Chord{Root: 1, Extension: Ninth, Alterations: AlterationSet(AltSharp11)}},
		{"flat13_on_eleventh", Chord{Root: 1, Extension: Eleventh, Alterations: AlterationSet(AltFlat13)}},
		{"sus2_sus4_conflict", Chord{Root: 1, Extension: Triad,
			Suspensions: SuspensionSet(Sus2) | SuspensionSet(Sus4)}},
		{"sus_with_omit3", Chord{Root: 1, Extension: Triad,
			Suspensions: SuspensionSet(Sus4), Omissions: OmissionSet(Omit3)}},
		{"applied_too_big", Chord{Root: 5, Extension: Seventh, Applied: 8}},
		{"applied_and_borrowed", Chord{Root: 5, Extension: Seventh, Applied: 5, Borrowed: "natural_minor"}},
		{"unknown_borrowed", Chord{Root: 6, Extension: Triad, Borrowed: "octatonic"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chord.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidConstruction(err), "got %v", err)
		})
	}
}

func TestChordValidateAccepts(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
	}{
		{"rest", Rest()},
		{"flat9_on_ninth", Chord{Root: 5, Extension: Ninth, Alterations: AlterationSet(AltFlat9)}},
		{"sharp11_on_eleventh", Chord{Root: 1, Extension: Eleventh, Alterations: AlterationSet(AltSharp11)}},
		{"flat13_on_thirteenth", Chord{Root: 1, Extension: Thirteenth, Alterations: AlterationSet(AltFlat13)}},
		{"flat5_on_triad", Chord{Root: 7, Extension: Triad, Alterations: AlterationSet(AltFlat5)}},
		{"seventh_third_inversion", Chord{Root: 5, Extension: Seventh, Inversion: 3}},
		{"thirteenth_wire_max_inversion", Chord{Root: 1, Extension: Thirteenth, Inversion: 3}},
		{"borrowed_alias", Chord{Root: 6, Extension: Triad, Borrowed: "minor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.chord.Validate())
		})
	}
}

func TestWithBuilders(t *testing.T) {
	base, err := NewSeventh(5)
	require.NoError(t, err)

	inv, err := base.WithInversion(2)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), inv.Inversion)
	assert.Equal(t, uint8(0), base.Inversion, "builders must not mutate the receiver")

	applied, err := base.WithApplied(5)
	require.NoError(t, err)
	assert.True(t, applied.IsApplied())

	_, err = applied.WithBorrowed("natural_minor")
	require.Error(t, err)
	assert.True(t, IsInvalidConstruction(err))

	_, err = base.WithInversion(4)
	require.Error(t, err)

	sus, err := base.WithSuspension(Sus4)
	require.NoError(t, err)
	_, err = sus.WithOmission(Omit3)
	require.Error(t, err)
}

func TestNormalization(t *testing.T) {
	ninth, err := NewChord(1, Ninth)
	require.NoError(t, err)
	redundant := ninth
	redundant.Adds = AddToneSet(Add9)

	norm := redundant.Normalized()
	assert.Equal(t, AddToneSet(0), norm.Adds)
	assert.True(t, redundant.Equal(ninth))

	// Idempotent.
	assert.Equal(t, norm, norm.Normalized())

	// add4 survives below the eleventh tier, add6 below the thirteenth.
	seventh, err := NewSeventh(1)
	require.NoError(t, err)
	seventh.Adds = AddToneSet(Add4) | AddToneSet(Add6)
	assert.Equal(t, seventh.Adds, seventh.Normalized().Adds)

	thirteenth, err := NewChord(1, Thirteenth)
	require.NoError(t, err)
	thirteenth.Adds = AddToneSet(Add4) | AddToneSet(Add6) | AddToneSet(Add9)
	assert.Equal(t, AddToneSet(0), thirteenth.Normalized().Adds)
}

func TestPredicates(t *testing.T) {
	assert.True(t, Rest().IsRest())

	triad, err := NewTriad(1)
	require.NoError(t, err)
	assert.True(t, triad.IsTriad())
	assert.False(t, triad.IsExtended())

	seventh, err := NewSeventh(5)
	require.NoError(t, err)
	assert.True(t, seventh.IsSeventh())

	ninth, err := NewChord(5, Ninth)
	require.NoError(t, err)
	assert.True(t, ninth.IsExtended())
}

func TestExtensionTones(t *testing.T) {
	assert.Equal(t, 3, Triad.Tones())
	assert.Equal(t, 4, Seventh.Tones())
	assert.Equal(t, 5, Ninth.Tones())
	assert.Equal(t, 6, Eleventh.Tones())
	assert.Equal(t, 7, Thirteenth.Tones())
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "rest", Rest().String())
	c := Chord{Root: 5, Extension: Seventh, Inversion: 1,
		Alterations: AlterationSet(AltFlat5), Suspensions: SuspensionSet(Sus4)}
	assert.Equal(t, "deg5^7 inv1 [b5] sus4", c.String())
}
