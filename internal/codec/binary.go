package codec

import (
	"fmt"

	"github.com/calegray/harmonia/internal/catalog"
	"github.com/calegray/harmonia/internal/theory"
)

// Size is the encoded chord length in bytes.
const Size = 5

// Extension tiers in wire-index order.
var extensionByIndex = [5]theory.Extension{
	theory.Triad, theory.Seventh, theory.Ninth, theory.Eleventh, theory.Thirteenth,
}

func extensionIndex(e theory.Extension) (uint8, bool) {
	for i, x := range extensionByIndex {
		if x == e {
			return uint8(i), true
		}
	}
	return 0, false
}

// Encode serializes a chord into its canonical 5-byte form. The chord is
// normalized first. A chord failing validation here is an internal defect:
// encode only accepts values produced by the theory constructors.
func Encode(c theory.Chord) ([Size]byte, error) {
	var out [Size]byte
	if err := c.Validate(); err != nil {
		return out, fmt.Errorf("internal: chord failed validation before encode: %w", err)
	}
	c = c.Normalized()

	extIdx, ok := extensionIndex(c.Extension)
	if !ok {
		return out, fmt.Errorf("internal: extension tier %d has no wire index", c.Extension)
	}

	out[0] = c.Root << 4
	if c.Adds.Has(theory.Add9) {
		out[0] |= 1 << 3
	}
	if c.Adds.Has(theory.Add6) {
		out[0] |= 1 << 2
	}
	if c.Adds.Has(theory.Add4) {
		out[0] |= 1 << 1
	}

	out[1] = c.Inversion<<6 | extIdx<<3 | c.Applied

	if c.Alterations.Has(theory.AltFlat13) {
		out[2] |= 1 << 5
	}
	if c.Alterations.Has(theory.AltSharp11) {
		out[2] |= 1 << 4
	}
	if c.Alterations.Has(theory.AltSharp9) {
		out[2] |= 1 << 3
	}
	if c.Alterations.Has(theory.AltFlat9) {
		out[2] |= 1 << 2
	}
	if c.Alterations.Has(theory.AltSharp5) {
		out[2] |= 1 << 1
	}
	if c.Alterations.Has(theory.AltFlat5) {
		out[2] |= 1 << 0
	}

	if c.Suspensions.Has(theory.Sus4) {
		out[3] |= 1 << 7
	}
	if c.Suspensions.Has(theory.Sus2) {
		out[3] |= 1 << 6
	}
	if c.Borrowed != "" {
		entry, ok := catalog.ByName(c.Borrowed)
		if !ok {
			return out, fmt.Errorf("internal: borrowed scale %q missing from catalog", c.Borrowed)
		}
		out[3] |= 1<<5 | entry.Index
	}

	if c.Omissions.Has(theory.Omit5) {
		out[4] |= 1 << 1
	}
	if c.Omissions.Has(theory.Omit3) {
		out[4] |= 1 << 0
	}
	return out, nil
}

// Decode parses a 5-byte payload back into a normalized chord. Malformed
// payloads fail with FormatError identifying the offending byte.
func Decode(b []byte) (theory.Chord, error) {
	if len(b) != Size {
		return theory.Chord{}, errFormat(-1, "payload must be %d bytes, got %d", Size, len(b))
	}

	if b[0]&(1<<7) != 0 || b[0]&1 != 0 {
		return theory.Chord{}, errFormat(0, "reserved bit set")
	}
	var c theory.Chord
	c.Root = b[0] >> 4 & 0x07
	if b[0]&(1<<3) != 0 {
		c.Adds |= theory.AddToneSet(theory.Add9)
	}
	if b[0]&(1<<2) != 0 {
		c.Adds |= theory.AddToneSet(theory.Add6)
	}
	if b[0]&(1<<1) != 0 {
		c.Adds |= theory.AddToneSet(theory.Add4)
	}

	c.Inversion = b[1] >> 6
	extIdx := b[1] >> 3 & 0x07
	if int(extIdx) >= len(extensionByIndex) {
		return theory.Chord{}, errFormat(1, "extension index %d out of range", extIdx)
	}
	c.Extension = extensionByIndex[extIdx]
	c.Applied = b[1] & 0x07

	if b[2]&0xC0 != 0 {
		return theory.Chord{}, errFormat(2, "reserved bits set")
	}
	if b[2]&(1<<5) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltFlat13)
	}
	if b[2]&(1<<4) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltSharp11)
	}
	if b[2]&(1<<3) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltSharp9)
	}
	if b[2]&(1<<2) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltFlat9)
	}
	if b[2]&(1<<1) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltSharp5)
	}
	if b[2]&(1<<0) != 0 {
		c.Alterations |= theory.AlterationSet(theory.AltFlat5)
	}

	if b[3]&(1<<7) != 0 {
		c.Suspensions |= theory.SuspensionSet(theory.Sus4)
	}
	if b[3]&(1<<6) != 0 {
		c.Suspensions |= theory.SuspensionSet(theory.Sus2)
	}
	scaleIdx := b[3] & 0x1F
	if b[3]&(1<<5) != 0 {
		entry, ok := catalog.ByIndex(scaleIdx)
		if !ok {
			return theory.Chord{}, errFormat(3, "unknown borrowed scale index %d", scaleIdx)
		}
		c.Borrowed = entry.Name
	} else if scaleIdx != 0 {
		return theory.Chord{}, errFormat(3, "borrowed scale index set without borrowed flag")
	}

	if b[4]&0xFC != 0 {
		return theory.Chord{}, errFormat(4, "reserved bits set")
	}
	if b[4]&(1<<1) != 0 {
		c.Omissions |= theory.OmissionSet(theory.Omit5)
	}
	if b[4]&(1<<0) != 0 {
		c.Omissions |= theory.OmissionSet(theory.Omit3)
	}

	if err := c.Validate(); err != nil {
		return theory.Chord{}, errFormat(-1, "decoded fields violate chord invariants: %v", err)
	}
	return c.Normalized(), nil
}
