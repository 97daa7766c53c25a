package theory

import (
	"fmt"
	"strings"

	"github.com/calegray/harmonia/internal/catalog"
)

// Extension is a chord's tone-count tier, named by the highest diatonic
// interval it stacks.
type Extension uint8

const (
	Triad      Extension = 5
	Seventh    Extension = 7
	Ninth      Extension = 9
	Eleventh   Extension = 11
	Thirteenth Extension = 13
)

// Valid reports whether e is one of the five defined tiers.
func (e Extension) Valid() bool {
	switch e {
	case Triad, Seventh, Ninth, Eleventh, Thirteenth:
		return true
	}
	return false
}

// Tones returns the number of stacked chord tones at this tier.
func (e Extension) Tones() int {
	switch e {
	case Triad:
		return 3
	case Seventh:
		return 4
	case Ninth:
		return 5
	case Eleventh:
		return 6
	case Thirteenth:
		return 7
	}
	return 0
}

// Alteration flags. Each names a chromatic shift of one chord member.
type Alteration uint8

const (
	AltFlat5   Alteration = 1 << 0
	AltSharp5  Alteration = 1 << 1
	AltFlat9   Alteration = 1 << 2
	AltSharp9  Alteration = 1 << 3
	AltSharp11 Alteration = 1 << 4
	AltFlat13  Alteration = 1 << 5
)

// AlterationSet is a fixed-capacity flag set over the six alterations.
type AlterationSet uint8

// Has reports whether a is set.
func (s AlterationSet) Has(a Alteration) bool { return uint8(s)&uint8(a) != 0 }

// Count returns the number of set flags.
func (s AlterationSet) Count() int { return popcount(uint8(s)) }

// Names returns the set alterations in canonical order.
func (s AlterationSet) Names() []string {
	var out []string
	for _, a := range alterationOrder {
		if s.Has(a) {
			out = append(out, alterationNames[a])
		}
	}
	return out
}

// Suspension flags.
type Suspension uint8

const (
	Sus2 Suspension = 1 << 0
	Sus4 Suspension = 1 << 1
)

// SuspensionSet is a flag set over {sus2, sus4}.
type SuspensionSet uint8

func (s SuspensionSet) Has(x Suspension) bool { return uint8(s)&uint8(x) != 0 }
func (s SuspensionSet) Count() int            { return popcount(uint8(s)) }

// Names returns the set suspensions in canonical order.
func (s SuspensionSet) Names() []string {
	var out []string
	if s.Has(Sus2) {
		out = append(out, "sus2")
	}
	if s.Has(Sus4) {
		out = append(out, "sus4")
	}
	return out
}

// Omission flags.
type Omission uint8

const (
	Omit3 Omission = 1 << 0
	Omit5 Omission = 1 << 1
)

// OmissionSet is a flag set over {omit3, omit5}.
type OmissionSet uint8

func (s OmissionSet) Has(x Omission) bool { return uint8(s)&uint8(x) != 0 }
func (s OmissionSet) Count() int          { return popcount(uint8(s)) }

// Names returns the set omissions in canonical order.
func (s OmissionSet) Names() []string {
	var out []string
	if s.Has(Omit3) {
		out = append(out, "omit3")
	}
	if s.Has(Omit5) {
		out = append(out, "omit5")
	}
	return out
}

// AddTone flags, distinct from the extension tier.
type AddTone uint8

const (
	Add4 AddTone = 1 << 0
	Add6 AddTone = 1 << 1
	Add9 AddTone = 1 << 2
)

// AddToneSet is a flag set over {add4, add6, add9}.
type AddToneSet uint8

func (s AddToneSet) Has(x AddTone) bool { return uint8(s)&uint8(x) != 0 }
func (s AddToneSet) Count() int         { return popcount(uint8(s)) }

// Names returns the set add tones in canonical order.
func (s AddToneSet) Names() []string {
	var out []string
	if s.Has(Add4) {
		out = append(out, "add4")
	}
	if s.Has(Add6) {
		out = append(out, "add6")
	}
	if s.Has(Add9) {
		out = append(out, "add9")
	}
	return out
}

func popcount(b uint8) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// Chord is the canonical immutable chord value. Root 0 means rest; a rest
// chord has every other field at its default. Values built through NewChord
// and the With* methods always satisfy the model invariants.
type Chord struct {
	Root        uint8
	Extension   Extension
	Inversion   uint8
	Alterations AlterationSet
	Suspensions SuspensionSet
	Omissions   OmissionSet
	Adds        AddToneSet
	Applied     uint8
	Borrowed    string
}

// Rest returns the rest chord.
func Rest() Chord {
	return Chord{Extension: Triad}
}

// NewChord builds a validated chord on the given scale degree.
func NewChord(root uint8, ext Extension) (Chord, error) {
	c := Chord{Root: root, Extension: ext}
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// NewTriad is shorthand for NewChord(root, Triad).
func NewTriad(root uint8) (Chord, error) { return NewChord(root, Triad) }

// NewSeventh is shorthand for NewChord(root, Seventh).
func NewSeventh(root uint8) (Chord, error) { return NewChord(root, Seventh) }

// Validate checks every model invariant. Violations are reported as
// InvalidConstruction errors naming the offending field.
func (c Chord) Validate() error {
	if c.Root > 7 {
		return errConstruction("root", "root must be 0..7, got %d", c.Root)
	}
	if !c.Extension.Valid() {
		return errConstruction("extension", "unknown extension tier %d", c.Extension)
	}
	if c.Root == 0 {
		if c.Inversion != 0 || c.Alterations != 0 || c.Suspensions != 0 ||
			c.Omissions != 0 || c.Adds != 0 || c.Applied != 0 || c.Borrowed != "" {
			return errConstruction("root", "rest chord must have all fields default")
		}
		return nil
	}

	maxInv := c.Extension.Tones() - 1
	if maxInv > maxWireInversion {
		maxInv = maxWireInversion
	}
	if int(c.Inversion) > maxInv {
		return errConstruction("inversion", "inversion %d out of range for %d-tone chord (max %d)",
			c.Inversion, c.Extension.Tones(), maxInv)
	}

	if c.Alterations.Has(AltFlat5) && c.Alterations.Has(AltSharp5) {
		return errConstruction("alterations", "b5 and #5 conflict")
	}
	if c.Alterations.Has(AltFlat9) && c.Alterations.Has(AltSharp9) {
		return errConstruction("alterations", "b9 and #9 conflict")
	}
	for _, a := range alterationOrder {
		if c.Alterations.Has(a) && c.Extension < alterationMinTier[a] {
			return errConstruction("alterations", "%s requires extension tier %d or above",
				alterationNames[a], alterationMinTier[a])
		}
	}

	if c.Suspensions.Has(Sus2) && c.Suspensions.Has(Sus4) {
		return errConstruction("suspensions", "sus2 and sus4 conflict")
	}
	if c.Suspensions != 0 && c.Omissions.Has(Omit3) {
		return errConstruction("suspensions", "suspension and omit3 target the same step")
	}

	if c.Applied > 7 {
		return errConstruction("applied", "applied target must be 0..7, got %d", c.Applied)
	}
	if c.Applied != 0 && c.Borrowed != "" {
		return errConstruction("applied", "applied and borrowed cannot both be set")
	}
	if c.Borrowed != "" {
		if _, ok := catalog.ByName(c.Borrowed); !ok {
			return errConstruction("borrowed", "unknown borrowed scale %q", c.Borrowed)
		}
	}
	return nil
}

// maxWireInversion is the ceiling imposed by the 2-bit inversion field of
// the binary format.
const maxWireInversion = 3

// Normalized returns the canonical representation: add flags whose tone the
// extension tier already supplies are cleared. One logical chord has exactly
// one normalized form; comparison and serialization operate on it.
func (c Chord) Normalized() Chord {
	if c.Extension >= Ninth {
		c.Adds &^= AddToneSet(Add9)
	}
	if c.Extension >= Eleventh {
		c.Adds &^= AddToneSet(Add4)
	}
	if c.Extension >= Thirteenth {
		c.Adds &^= AddToneSet(Add6)
	}
	if c.Suspensions != 0 {
		c.Omissions &^= OmissionSet(Omit3)
	}
	return c
}

// Equal reports structural equality over normalized representations.
func (c Chord) Equal(other Chord) bool {
	return c.Normalized() == other.Normalized()
}

// WithInversion returns a copy with the inversion replaced.
func (c Chord) WithInversion(inv uint8) (Chord, error) {
	c.Inversion = inv
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithAlteration returns a copy with the alteration flag set.
func (c Chord) WithAlteration(a Alteration) (Chord, error) {
	c.Alterations |= AlterationSet(a)
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithSuspension returns a copy with the suspension flag set.
func (c Chord) WithSuspension(s Suspension) (Chord, error) {
	c.Suspensions |= SuspensionSet(s)
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithOmission returns a copy with the omission flag set.
func (c Chord) WithOmission(o Omission) (Chord, error) {
	c.Omissions |= OmissionSet(o)
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithAdd returns a copy with the add-tone flag set.
func (c Chord) WithAdd(a AddTone) (Chord, error) {
	c.Adds |= AddToneSet(a)
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithApplied returns a copy targeting the given degree as a secondary
// (applied) chord.
func (c Chord) WithApplied(target uint8) (Chord, error) {
	c.Applied = target
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// WithBorrowed returns a copy borrowing its degree resolution from the
// named scale.
func (c Chord) WithBorrowed(scale string) (Chord, error) {
	c.Borrowed = scale
	if err := c.Validate(); err != nil {
		return Chord{}, err
	}
	return c, nil
}

// IsRest reports whether the chord is a rest.
func (c Chord) IsRest() bool { return c.Root == 0 }

// IsTriad reports whether the chord is at the triad tier.
func (c Chord) IsTriad() bool { return c.Extension == Triad }

// IsSeventh reports whether the chord is at the seventh tier.
func (c Chord) IsSeventh() bool { return c.Extension == Seventh }

// IsExtended reports whether the chord is at the ninth tier or above.
func (c Chord) IsExtended() bool { return c.Extension >= Ninth }

// IsApplied reports whether the chord targets another degree.
func (c Chord) IsApplied() bool { return c.Applied != 0 }

// IsBorrowed reports whether the chord borrows from another scale.
func (c Chord) IsBorrowed() bool { return c.Borrowed != "" }

// String renders a compact debug form, e.g. "deg5^7/5 inv1 [b9] sus4".
func (c Chord) String() string {
	if c.IsRest() {
		return "rest"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "deg%d^%d", c.Root, c.Extension)
	if c.Applied != 0 {
		fmt.Fprintf(&b, "/%d", c.Applied)
	}
	if c.Borrowed != "" {
		fmt.Fprintf(&b, " borrowed=%s", c.Borrowed)
	}
	if c.Inversion != 0 {
		fmt.Fprintf(&b, " inv%d", c.Inversion)
	}
	if c.Alterations != 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(c.Alterations.Names(), ","))
	}
	for _, n := range c.Suspensions.Names() {
		b.WriteByte(' ')
		b.WriteString(n)
	}
	for _, n := range c.Adds.Names() {
		b.WriteByte(' ')
		b.WriteString(n)
	}
	for _, n := range c.Omissions.Names() {
		b.WriteByte(' ')
		b.WriteString(n)
	}
	return b.String()
}
