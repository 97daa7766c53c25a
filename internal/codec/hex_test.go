package codec

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegray/harmonia/internal/theory"
)

var hexPattern = regexp.MustCompile(`^[0-9A-F]{10}$`)

func TestHexRoundTrip(t *testing.T) {
	for _, c := range validCorpus() {
		s, err := ToHex(c)
		require.NoError(t, err, "%v", c)
		assert.True(t, hexPattern.MatchString(s), "hex %q", s)

		got, err := FromHex(s)
		require.NoError(t, err)
		assert.Equal(t, c.Normalized(), got, "%v", c)
	}
}

func TestFromHexAcceptsLowercase(t *testing.T) {
	c := theory.Chord{Root: 5, Extension: theory.Seventh}
	s, err := ToHex(c)
	require.NoError(t, err)

	got, err := FromHex(strings.ToLower(s))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestToHexKnownValue(t *testing.T) {
	s, err := ToHex(theory.Chord{Root: 5, Extension: theory.Seventh})
	require.NoError(t, err)
	assert.Equal(t, "5008000000", s)
}

func TestFromHexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too_short", "5008"},
		{"too_long", "500800000000"},
		{"non_hex", "50080000ZZ"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromHex(tt.input)
			require.Error(t, err)
			assert.True(t, IsInvalidFormat(err))
		})
	}
}
