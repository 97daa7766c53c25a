package theory

import "github.com/calegray/harmonia/internal/catalog"

// Base score per extension tier.
var complexityBase = map[Extension]float64{
	Triad:      1.0,
	Seventh:    2.0,
	Ninth:      3.5,
	Eleventh:   5.0,
	Thirteenth: 6.0,
}

// Complexity scores a chord in [1,10] relative to the named primary scale.
// Purely deterministic: base by extension tier, plus additive terms for
// alterations, inversion, applied distance, borrowed distance, and
// suspension/omission/add flags, clamped to the range.
func Complexity(c Chord, scaleName string) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	entry, ok := catalog.ByName(scaleName)
	if !ok {
		return 0, errScale("scale", "unknown scale %q", scaleName)
	}
	if c.IsRest() {
		return 1.0, nil
	}
	primary := fromEntry(entry)

	score := complexityBase[c.Extension]

	for _, a := range alterationOrder {
		if !c.Alterations.Has(a) {
			continue
		}
		if a == AltFlat5 || a == AltSharp5 {
			score += 0.5
		} else {
			score += 1.0
		}
	}

	score += 0.5 * float64(c.Inversion)

	if c.Applied != 0 {
		target, ok := primary.DegreeToChromatic(int(c.Applied))
		if !ok {
			return 0, errScale("applied", "applied target %d cannot be placed in scale %q", c.Applied, scaleName)
		}
		score += 1.0 + float64(fifthsDistance(target))/6.0
	}

	if c.Borrowed != "" {
		borrowed, err := NamedScale(c.Borrowed)
		if err != nil {
			return 0, errScale("borrowed", "borrowed scale %q not resolvable", c.Borrowed)
		}
		a := hamming(primary, borrowed)
		if a > 6 {
			a = 6
		}
		score += 1.0 + 1.5*float64(a)/6.0
	}

	score += 0.25 * float64(c.Suspensions.Count()+c.Omissions.Count()+c.Adds.Count())

	if score < 1.0 {
		score = 1.0
	}
	if score > 10.0 {
		score = 10.0
	}
	return score, nil
}

// fifthsDistance returns the circle-of-fifths distance (0..6) between the
// tonic and a chromatic offset.
func fifthsDistance(chrom int) int {
	c := ((chrom % 12) + 12) % 12
	for k := 0; k < 12; k++ {
		if (7*k)%12 == c {
			if k > 6 {
				return 12 - k
			}
			return k
		}
	}
	return 6
}

// hamming counts the slots on which two fingerprints disagree.
func hamming(a, b ScaleFingerprint) int {
	pa, pb := a.Pattern(), b.Pattern()
	n := 0
	for i := range pa {
		if pa[i] != pb[i] {
			n++
		}
	}
	return n
}
