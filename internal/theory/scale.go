package theory

import (
	"strings"

	"github.com/calegray/harmonia/internal/catalog"
)

// ScaleFingerprint is a 12-slot chromatic presence bitmap describing a
// scale or mode. Slot 0 is the tonic and is always active.
type ScaleFingerprint struct {
	slots [12]bool
}

// NewScaleFingerprint builds a fingerprint from a raw 12-element pattern
// of 0/1 values. The tonic slot must be set.
func NewScaleFingerprint(pattern []uint8) (ScaleFingerprint, error) {
	if len(pattern) != 12 {
		return ScaleFingerprint{}, errConstruction("scale", "pattern must have 12 slots, got %d", len(pattern))
	}
	var fp ScaleFingerprint
	for i, v := range pattern {
		switch v {
		case 0:
		case 1:
			fp.slots[i] = true
		default:
			return ScaleFingerprint{}, errConstruction("scale", "pattern slot %d must be 0 or 1, got %d", i, v)
		}
	}
	if !fp.slots[0] {
		return ScaleFingerprint{}, errConstruction("scale", "tonic slot must be active")
	}
	return fp, nil
}

// NamedScale resolves a catalog scale or mode by name (case-insensitive,
// aliases accepted).
func NamedScale(name string) (ScaleFingerprint, error) {
	e, ok := catalog.ByName(name)
	if !ok {
		return ScaleFingerprint{}, errConstruction("scale", "unknown scale %q", name)
	}
	return fromEntry(e), nil
}

func fromEntry(e catalog.Entry) ScaleFingerprint {
	var fp ScaleFingerprint
	for i, v := range e.Pattern {
		fp.slots[i] = v == 1
	}
	return fp
}

func mustNamed(name string) ScaleFingerprint {
	fp, err := NamedScale(name)
	if err != nil {
		panic(err)
	}
	return fp
}

// Factories for the common scales. These resolve against the catalog, so
// they stay consistent with the wire-index table the codec uses.
func MajorScale() ScaleFingerprint         { return mustNamed("major") }
func NaturalMinorScale() ScaleFingerprint  { return mustNamed("natural_minor") }
func HarmonicMinorScale() ScaleFingerprint { return mustNamed("harmonic_minor") }
func DorianScale() ScaleFingerprint        { return mustNamed("dorian") }
func PhrygianScale() ScaleFingerprint      { return mustNamed("phrygian") }
func LydianScale() ScaleFingerprint        { return mustNamed("lydian") }
func MixolydianScale() ScaleFingerprint    { return mustNamed("mixolydian") }
func LocrianScale() ScaleFingerprint       { return mustNamed("locrian") }

// Contains reports whether the chromatic offset (0..11 from the tonic) is
// an active scale tone.
func (s ScaleFingerprint) Contains(chromatic int) bool {
	return s.slots[((chromatic%12)+12)%12]
}

// NoteCount returns the number of active slots.
func (s ScaleFingerprint) NoteCount() int {
	n := 0
	for _, on := range s.slots {
		if on {
			n++
		}
	}
	return n
}

// IsDiatonic reports whether the scale has exactly 7 notes with every
// consecutive step of 1 or 2 semitones.
func (s ScaleFingerprint) IsDiatonic() bool {
	if s.NoteCount() != 7 {
		return false
	}
	prev := 0
	for i := 1; i < 12; i++ {
		if s.slots[i] {
			if step := i - prev; step != 1 && step != 2 {
				return false
			}
			prev = i
		}
	}
	// Wrap back to the tonic an octave up.
	step := 12 - prev
	return step == 1 || step == 2
}

// ChromaticToDegree maps an active chromatic offset to its ordinal scale
// degree (1..NoteCount). Inactive offsets report ok=false.
func (s ScaleFingerprint) ChromaticToDegree(chromatic int) (int, bool) {
	c := ((chromatic % 12) + 12) % 12
	if !s.slots[c] {
		return 0, false
	}
	deg := 0
	for i := 0; i <= c; i++ {
		if s.slots[i] {
			deg++
		}
	}
	return deg, true
}

// DegreeToChromatic maps a scale degree (1..NoteCount) to its chromatic
// offset from the tonic. Out-of-range degrees report ok=false.
func (s ScaleFingerprint) DegreeToChromatic(degree int) (int, bool) {
	if degree < 1 {
		return 0, false
	}
	n := 0
	for i, on := range s.slots {
		if on {
			n++
			if n == degree {
				return i, true
			}
		}
	}
	return 0, false
}

// Pattern returns the fingerprint as a 12-element 0/1 array.
func (s ScaleFingerprint) Pattern() [12]uint8 {
	var p [12]uint8
	for i, on := range s.slots {
		if on {
			p[i] = 1
		}
	}
	return p
}

// String renders the bitmap as e.g. "101011010101".
func (s ScaleFingerprint) String() string {
	var b strings.Builder
	for _, on := range s.slots {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
