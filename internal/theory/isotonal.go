package theory

import "github.com/calegray/harmonia/internal/catalog"

// IsIsotonal reports whether two chords share the same unordered set of
// stable scale degrees within the scale. Reflexive and symmetric.
func IsIsotonal(a, b Chord, scale ScaleFingerprint) (bool, error) {
	da, err := StableScaleDegrees(a, scale)
	if err != nil {
		return false, err
	}
	db, err := StableScaleDegrees(b, scale)
	if err != nil {
		return false, err
	}
	set := make(map[string]struct{}, len(da))
	for _, d := range da {
		set[d] = struct{}{}
	}
	other := make(map[string]struct{}, len(db))
	for _, d := range db {
		other[d] = struct{}{}
	}
	if len(set) != len(other) {
		return false, nil
	}
	for d := range set {
		if _, ok := other[d]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsValidTritoneSub reports whether the chord is eligible for tritone
// substitution: an applied dominant seventh, V7 in a major-family scale,
// or V7 borrowed from major.
func IsValidTritoneSub(c Chord, scaleName string) bool {
	if !c.IsSeventh() {
		return false
	}
	if c.Applied != 0 {
		return true
	}
	if c.Root != 5 {
		return false
	}
	if c.Borrowed != "" {
		e, ok := catalog.ByName(c.Borrowed)
		return ok && e.Name == "major"
	}
	e, ok := catalog.ByName(scaleName)
	return ok && e.Name == "major"
}
