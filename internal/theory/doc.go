// Package theory implements the harmonia chord/scale model and analysis.
//
// The package is pure: every operation is a function over small immutable
// values (Chord, ScaleFingerprint) and returns an explicit error. There is
// no shared mutable state, so all functions are safe for concurrent use.
//
// Model:
//   - ScaleFingerprint: 12-slot chromatic presence bitmap, tonic at slot 0.
//   - Chord: root degree, extension tier, inversion, and fixed flag sets
//     for alterations, suspensions, omissions and add tones, plus optional
//     applied-target and borrowed-scale references.
//
// Analysis:
//   - StableScaleDegrees: inversion-invariant degree labels.
//   - Complexity: deterministic [1,10] score.
//   - RomanNumeral: symbol, figured bass, applied/borrowed notation.
//   - IsIsotonal: unordered stable-degree set equality.
//
// Invariants are enforced by validating constructors; a Chord obtained from
// NewChord or a With* method is always internally consistent. Direct struct
// literals bypass validation and are only appropriate in tests.
package theory
