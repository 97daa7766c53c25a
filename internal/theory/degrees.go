package theory

import (
	"sort"
	"strconv"
)

// tone is one resolved chord member: its relative member number (1, 3, 5,
// 7, 9, ...), its absolute chromatic offset from the scale tonic, and the
// named alteration that shifted it, if any.
type tone struct {
	member int
	chrom  int
	alt    Alteration
}

// effectiveScale returns the fingerprint degree labels resolve against:
// the borrowed scale when set, otherwise the caller's primary scale.
func effectiveScale(c Chord, primary ScaleFingerprint) (ScaleFingerprint, error) {
	if c.Borrowed == "" {
		return primary, nil
	}
	fp, err := NamedScale(c.Borrowed)
	if err != nil {
		return ScaleFingerprint{}, errScale("borrowed", "borrowed scale %q not resolvable", c.Borrowed)
	}
	return fp, nil
}

// memberChromatic resolves one relative chord member to an absolute
// chromatic offset from the scale tonic, before alterations.
//
// Applied chords rebuild the member inside the target degree's own major
// key: the member's major-scale offset is stacked on the target's chromatic
// root. Otherwise members stack diatonically on the chord root within s.
func memberChromatic(c Chord, s ScaleFingerprint, member int) (int, error) {
	if c.Applied != 0 {
		target, ok := s.DegreeToChromatic(int(c.Applied))
		if !ok {
			return 0, errScale("applied", "applied target %d cannot be placed in scale", c.Applied)
		}
		off := majorDegreeOffsets[(int(c.Root)-1+member-1)%7]
		return (target + off) % 12, nil
	}
	n := s.NoteCount()
	if int(c.Root) > n {
		return 0, errScale("root", "root degree %d cannot be placed in %d-note scale", c.Root, n)
	}
	deg := ((int(c.Root)-1+member-1)%n + 1)
	chrom, ok := s.DegreeToChromatic(deg)
	if !ok {
		return 0, errScale("root", "degree %d cannot be placed in scale", deg)
	}
	return chrom, nil
}

// chordTones builds the full resolved tone list for a chord against the
// already-effective scale: extension template, then suspensions, omissions,
// adds and alterations. Result is sorted by member number, which puts the
// root first and the rest in ascending chord-tone order.
func chordTones(c Chord, s ScaleFingerprint) ([]tone, error) {
	members := []int{1, 3, 5}
	switch {
	case c.Extension >= Thirteenth:
		members = append(members, 7, 9, 11, 13)
	case c.Extension >= Eleventh:
		members = append(members, 7, 9, 11)
	case c.Extension >= Ninth:
		members = append(members, 7, 9)
	case c.Extension >= Seventh:
		members = append(members, 7)
	}

	present := make(map[int]*tone, len(members)+3)
	for _, m := range members {
		present[m] = &tone{member: m}
	}

	if c.Suspensions.Has(Sus2) {
		delete(present, 3)
		present[2] = &tone{member: 2}
	}
	if c.Suspensions.Has(Sus4) {
		delete(present, 3)
		present[4] = &tone{member: 4}
	}
	if c.Omissions.Has(Omit3) {
		delete(present, 3)
	}
	if c.Omissions.Has(Omit5) {
		delete(present, 5)
	}
	if c.Adds.Has(Add4) && present[4] == nil {
		present[4] = &tone{member: 4}
	}
	if c.Adds.Has(Add6) && present[6] == nil {
		present[6] = &tone{member: 6}
	}
	if c.Adds.Has(Add9) && present[9] == nil {
		present[9] = &tone{member: 9}
	}

	// An alteration on a member the template dropped reinstates it with
	// the shift applied.
	for _, a := range alterationOrder {
		if !c.Alterations.Has(a) {
			continue
		}
		m := alterationMember[a]
		if present[m] == nil {
			present[m] = &tone{member: m}
		}
		present[m].alt = a
	}

	tones := make([]tone, 0, len(present))
	for _, t := range present {
		chrom, err := memberChromatic(c, s, t.member)
		if err != nil {
			return nil, err
		}
		if t.alt != 0 {
			chrom = ((chrom+alterationShift[t.alt])%12 + 12) % 12
		}
		tones = append(tones, tone{member: t.member, chrom: chrom, alt: t.alt})
	}
	sort.Slice(tones, func(i, j int) bool { return tones[i].member < tones[j].member })
	return tones, nil
}

// labelTone maps a resolved tone to its degree label within s. Active
// semitones get the plain ordinal; inactive ones get an accidental prefix
// against a neighboring reference degree. Named alterations use their
// conventional spelling; other chromatic tones prefer the sharpened
// lower neighbor.
func labelTone(s ScaleFingerprint, t tone) string {
	if deg, ok := s.ChromaticToDegree(t.chrom); ok {
		return strconv.Itoa(deg)
	}

	lowerDeg, lowerDist := neighborDegree(s, t.chrom, -1)
	upperDeg, upperDist := neighborDegree(s, t.chrom, +1)

	if t.alt != 0 {
		if alterationSpelling[t.alt] == 'b' {
			return "b" + strconv.Itoa(upperDeg)
		}
		return "#" + strconv.Itoa(lowerDeg)
	}
	if lowerDist == 1 || lowerDist <= upperDist {
		return "#" + strconv.Itoa(lowerDeg)
	}
	return "b" + strconv.Itoa(upperDeg)
}

// neighborDegree walks from chrom in the given direction to the nearest
// active slot and returns its degree and distance in semitones.
func neighborDegree(s ScaleFingerprint, chrom, dir int) (deg, dist int) {
	for step := 1; step < 12; step++ {
		c := ((chrom+dir*step)%12 + 12) % 12
		if d, ok := s.ChromaticToDegree(c); ok {
			return d, step
		}
	}
	return 1, 12
}

// StableScaleDegrees resolves the chord's tones to degree labels within
// the scale. The result is inversion-invariant: it reflects harmonic
// function, not voicing. Order is root first, then ascending chord-tone
// order. A rest chord yields an empty slice.
func StableScaleDegrees(c Chord, scale ScaleFingerprint) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsRest() {
		return []string{}, nil
	}
	s, err := effectiveScale(c, scale)
	if err != nil {
		return nil, err
	}
	tones, err := chordTones(c, s)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(tones))
	for i, t := range tones {
		labels[i] = labelTone(s, t)
	}
	return labels, nil
}
