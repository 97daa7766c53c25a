package theory

// Degree numerals for the seven diatonic degrees.
var (
	upperNumerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}
	lowerNumerals = [7]string{"i", "ii", "iii", "iv", "v", "vi", "vii"}
)

// Figured-bass symbols by extension tier, indexed by inversion. Standard
// conventions: triads none/6/64, sevenths 7/65/43/42. Inversions of ninth
// and higher chords keep the plain tier figure.
var figuredBass = map[Extension][]string{
	Triad:      {"", "6", "64"},
	Seventh:    {"7", "65", "43", "42"},
	Ninth:      {"9"},
	Eleventh:   {"11"},
	Thirteenth: {"13"},
}

// Semitone offsets of the major-scale degrees, used when an applied chord
// rebuilds its template inside the target degree's own key.
var majorDegreeOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}

// Canonical ordering and display names for alteration flags.
var alterationOrder = [6]Alteration{AltFlat5, AltSharp5, AltFlat9, AltSharp9, AltSharp11, AltFlat13}

var alterationNames = map[Alteration]string{
	AltFlat5:   "b5",
	AltSharp5:  "#5",
	AltFlat9:   "b9",
	AltSharp9:  "#9",
	AltSharp11: "#11",
	AltFlat13:  "b13",
}

// Minimum extension tier at which each alteration's scale step exists.
var alterationMinTier = map[Alteration]Extension{
	AltFlat5:   Triad,
	AltSharp5:  Triad,
	AltFlat9:   Ninth,
	AltSharp9:  Ninth,
	AltSharp11: Eleventh,
	AltFlat13:  Thirteenth,
}

// Chord member each alteration shifts, as a relative member number.
var alterationMember = map[Alteration]int{
	AltFlat5:   5,
	AltSharp5:  5,
	AltFlat9:   9,
	AltSharp9:  9,
	AltSharp11: 11,
	AltFlat13:  13,
}

// Semitone shift each alteration applies to its member.
var alterationShift = map[Alteration]int{
	AltFlat5:   -1,
	AltSharp5:  +1,
	AltFlat9:   -1,
	AltSharp9:  +1,
	AltSharp11: +1,
	AltFlat13:  -1,
}

// Conventional enharmonic spelling for each named alteration: flat
// alterations are spelled against the upper reference degree, sharp
// alterations against the lower. Fixed table so b9 always labels as a
// flattened degree (b2-style), never an ad hoc sharpened one.
var alterationSpelling = map[Alteration]byte{
	AltFlat5:   'b',
	AltSharp5:  '#',
	AltFlat9:   'b',
	AltSharp9:  '#',
	AltSharp11: '#',
	AltFlat13:  'b',
}
