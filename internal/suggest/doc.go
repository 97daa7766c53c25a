// Package suggest implements the progression suggestion engine.
//
// The engine is a frequency counter over observed chord progressions. It
// never interprets chords itself: encoded hex strings from the codec are
// the canonical keys for everything persisted, and theory values are only
// decoded back out to attach analysis features to suggestions. Core theory
// and codec state is never mutated.
//
// Storage is SQLite (WAL mode, single writer) with two tables: sources,
// one row per named progression corpus, and transitions, one row per
// (source, from, to) chord pair with an accumulated observation weight.
package suggest
