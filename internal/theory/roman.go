package theory

import "strings"

// Numeral is the rendered Roman-numeral analysis of a chord in a scale.
type Numeral struct {
	// Symbol is the cased numeral with quality mark, borrowed accidental
	// prefix and tier digits, e.g. "V7", "bVI", "viio".
	Symbol string

	// FiguredBass is the inversion figure, e.g. "6", "65". Empty for a
	// root-position triad.
	FiguredBass string

	// Quality is the quality mark alone: "" (major/minor), "o", "ø", "+".
	Quality string

	// Applied is the target numeral for secondary chords, e.g. "V" in
	// "V7/V". Empty when the chord is not applied.
	Applied string

	// Borrowed is the borrowed scale name, empty when not borrowed.
	Borrowed string

	// Annotations are the alteration/suspension/add/omit names in
	// canonical order.
	Annotations []string
}

// String renders the full notation: symbol, figured bass, applied target
// and annotations, e.g. "V65/V" or "IV add9".
func (n Numeral) String() string {
	var b strings.Builder
	b.WriteString(n.Symbol)
	// Tier digits already part of Symbol; figured bass replaces them when
	// the chord is inverted.
	if n.Applied != "" {
		b.WriteByte('/')
		b.WriteString(n.Applied)
	}
	for _, a := range n.Annotations {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}

// chordQuality classifies the triad-defining third and fifth intervals.
// Suspensions and omissions do not move the classification; it always uses
// the stable members 3 and 5.
func chordQuality(c Chord, s ScaleFingerprint) (upper bool, mark string, err error) {
	rootChrom, err := memberChromatic(c, s, 1)
	if err != nil {
		return false, "", err
	}
	thirdChrom, err := memberChromatic(c, s, 3)
	if err != nil {
		return false, "", err
	}
	fifthChrom, err := memberChromatic(c, s, 5)
	if err != nil {
		return false, "", err
	}
	if c.Alterations.Has(AltFlat5) {
		fifthChrom = ((fifthChrom-1)%12 + 12) % 12
	}
	if c.Alterations.Has(AltSharp5) {
		fifthChrom = (fifthChrom + 1) % 12
	}

	third := ((thirdChrom-rootChrom)%12 + 12) % 12
	fifth := ((fifthChrom-rootChrom)%12 + 12) % 12

	switch {
	case third == 3 && fifth == 6:
		if c.Extension == Triad {
			return false, "o", nil
		}
		return false, "ø", nil
	case third == 4 && fifth == 8:
		return true, "+", nil
	case third == 3:
		return false, "", nil
	default:
		return true, "", nil
	}
}

// borrowedPrefix computes the accidental implied by the borrowed scale's
// shift of the root degree relative to the primary scale, e.g. "b" for the
// bVI borrowed from natural minor into major.
func borrowedPrefix(c Chord, primary, borrowed ScaleFingerprint) string {
	p, ok := primary.DegreeToChromatic(int(c.Root))
	if !ok {
		return ""
	}
	b, ok := borrowed.DegreeToChromatic(int(c.Root))
	if !ok {
		return ""
	}
	switch d := ((b-p)%12 + 12) % 12; d {
	case 11:
		return "b"
	case 1:
		return "#"
	default:
		return ""
	}
}

// RomanNumeral renders the chord as a Roman numeral within the scale.
// A rest chord renders as the fixed symbol "REST".
func RomanNumeral(c Chord, scale ScaleFingerprint) (Numeral, error) {
	if err := c.Validate(); err != nil {
		return Numeral{}, err
	}
	if c.IsRest() {
		return Numeral{Symbol: "REST"}, nil
	}
	s, err := effectiveScale(c, scale)
	if err != nil {
		return Numeral{}, err
	}

	upper, mark, err := chordQuality(c, s)
	if err != nil {
		return Numeral{}, err
	}

	base := lowerNumerals[c.Root-1]
	if upper {
		base = upperNumerals[c.Root-1]
	}

	prefix := ""
	if c.Borrowed != "" {
		prefix = borrowedPrefix(c, scale, s)
	}

	// Inversions past the figure table (ninth and higher chords) keep the
	// plain tier figure so the symbol never loses its extension.
	figures := figuredBass[c.Extension]
	figure := figures[0]
	if int(c.Inversion) < len(figures) {
		figure = figures[c.Inversion]
	}

	symbol := prefix + base + mark + figure

	n := Numeral{
		Symbol:      symbol,
		FiguredBass: figure,
		Quality:     mark,
		Borrowed:    c.Borrowed,
	}
	if c.Applied != 0 {
		n.Applied = upperNumerals[c.Applied-1]
	}
	n.Annotations = append(n.Annotations, c.Alterations.Names()...)
	n.Annotations = append(n.Annotations, c.Suspensions.Names()...)
	n.Annotations = append(n.Annotations, c.Adds.Names()...)
	n.Annotations = append(n.Annotations, c.Omissions.Names()...)
	return n, nil
}
