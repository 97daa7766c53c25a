package theory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanNumeral(t *testing.T) {
	tests := []struct {
		name        string
		chord       Chord
		scale       ScaleFingerprint
		wantSymbol  string
		wantFigured string
		wantQuality string
		wantApplied string
	}{
		{
			name:        "dominant_seventh",
			chord:       Chord{Root: 5, Extension: Seventh},
			scale:       MajorScale(),
			wantSymbol:  "V7",
			wantFigured: "7",
		},
		{
			name:       "major_tonic",
			chord:      Chord{Root: 1, Extension: Triad},
			scale:      MajorScale(),
			wantSymbol: "I",
		},
		{
			name:       "minor_supertonic",
			chord:      Chord{Root: 2, Extension: Triad},
			scale:      MajorScale(),
			wantSymbol: "ii",
		},
		{
			name:        "diminished_leading_tone",
			chord:       Chord{Root: 7, Extension: Triad},
			scale:       MajorScale(),
			wantSymbol:  "viio",
			wantQuality: "o",
		},
		{
			name:        "half_diminished_seventh",
			chord:       Chord{Root: 7, Extension: Seventh},
			scale:       MajorScale(),
			wantSymbol:  "viiø7",
			wantFigured: "7",
			wantQuality: "ø",
		},
		{
			name:        "augmented_mediant_harmonic_minor",
			chord:       Chord{Root: 3, Extension: Triad},
			scale:       HarmonicMinorScale(),
			wantSymbol:  "III+",
			wantQuality: "+",
		},
		{
			name:        "first_inversion_triad",
			chord:       Chord{Root: 1, Extension: Triad, Inversion: 1},
			scale:       MajorScale(),
			wantSymbol:  "I6",
			wantFigured: "6",
		},
		{
			name:        "second_inversion_seventh",
			chord:       Chord{Root: 5, Extension: Seventh, Inversion: 2},
			scale:       MajorScale(),
			wantSymbol:  "V43",
			wantFigured: "43",
		},
		{
			name:        "inverted_ninth_keeps_tier",
			chord:       Chord{Root: 5, Extension: Ninth, Inversion: 2},
			scale:       MajorScale(),
			wantSymbol:  "V9",
			wantFigured: "9",
		},
		{
			name:        "secondary_dominant",
			chord:       Chord{Root: 5, Extension: Seventh, Applied: 5},
			scale:       MajorScale(),
			wantSymbol:  "V7",
			wantFigured: "7",
			wantApplied: "V",
		},
		{
			name:       "borrowed_flat_six",
			chord:      Chord{Root: 6, Extension: Triad, Borrowed: "natural_minor"},
			scale:      MajorScale(),
			wantSymbol: "bVI",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RomanNumeral(tt.chord, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSymbol, got.Symbol)
			assert.Equal(t, tt.wantFigured, got.FiguredBass)
			assert.Equal(t, tt.wantQuality, got.Quality)
			assert.Equal(t, tt.wantApplied, got.Applied)
		})
	}
}

func TestRomanNumeralInvertedExtendedKeepsTier(t *testing.T) {
	triad, err := RomanNumeral(Chord{Root: 5, Extension: Triad}, MajorScale())
	require.NoError(t, err)

	for _, ext := range []Extension{Ninth, Eleventh, Thirteenth} {
		want := figuredBass[ext][0]
		for inv := uint8(1); inv <= 3; inv++ {
			n, err := RomanNumeral(Chord{Root: 5, Extension: ext, Inversion: inv}, MajorScale())
			require.NoError(t, err)
			assert.Equal(t, "V"+want, n.Symbol, "extension %d inversion %d", ext, inv)
			assert.Equal(t, want, n.FiguredBass)
			assert.NotEqual(t, triad.Symbol, n.Symbol,
				"an inverted extended chord must not collapse to the bare triad numeral")
		}
	}
}

func TestRomanNumeralRest(t *testing.T) {
	n, err := RomanNumeral(Rest(), MajorScale())
	require.NoError(t, err)
	assert.Equal(t, "REST", n.Symbol)
}

func TestRomanNumeralAnnotations(t *testing.T) {
	c := Chord{Root: 5, Extension: Ninth,
		Alterations: AlterationSet(AltFlat9), Adds: AddToneSet(Add6)}
	n, err := RomanNumeral(c, MajorScale())
	require.NoError(t, err)
	assert.Equal(t, []string{"b9", "add6"}, n.Annotations)
	assert.Equal(t, "V9 b9 add6", n.String())
}

func TestRomanNumeralGolden(t *testing.T) {
	cases := []struct {
		name  string
		chord Chord
		scale ScaleFingerprint
	}{
		{"major_tonic", Chord{Root: 1, Extension: Triad}, MajorScale()},
		{"minor_two_seventh", Chord{Root: 2, Extension: Seventh}, MajorScale()},
		{"leading_tone_triad", Chord{Root: 7, Extension: Triad}, MajorScale()},
		{"dominant_seventh", Chord{Root: 5, Extension: Seventh}, MajorScale()},
		{"dominant_seventh_first_inversion", Chord{Root: 5, Extension: Seventh, Inversion: 1}, MajorScale()},
		{"secondary_dominant", Chord{Root: 5, Extension: Seventh, Applied: 5}, MajorScale()},
		{"borrowed_flat_six", Chord{Root: 6, Extension: Triad, Borrowed: "natural_minor"}, MajorScale()},
		{"suspended_tonic", Chord{Root: 1, Extension: Triad, Suspensions: SuspensionSet(Sus4)}, MajorScale()},
		{"minor_dominant", Chord{Root: 5, Extension: Triad}, NaturalMinorScale()},
		{"altered_ninth", Chord{Root: 5, Extension: Ninth, Alterations: AlterationSet(AltFlat9)}, MajorScale()},
	}

	var b strings.Builder
	for _, tc := range cases {
		n, err := RomanNumeral(tc.chord, tc.scale)
		require.NoError(t, err, tc.name)
		fmt.Fprintf(&b, "%s: %s\n", tc.name, n.String())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "roman_render", []byte(b.String()))
}
