package codec

import (
	"encoding/hex"
	"strings"

	"github.com/calegray/harmonia/internal/theory"
)

// HexSize is the encoded chord length in hex characters.
const HexSize = Size * 2

// ToHex encodes a chord as 10 uppercase hex characters.
func ToHex(c theory.Chord) (string, error) {
	b, err := Encode(c)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}

// FromHex decodes a 10-character hex payload, accepting either case.
func FromHex(s string) (theory.Chord, error) {
	if len(s) != HexSize {
		return theory.Chord{}, errFormat(-1, "hex payload must be %d characters, got %d", HexSize, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return theory.Chord{}, errFormat(-1, "non-hex character in payload")
	}
	return Decode(b)
}
