// Package catalog holds the read-only table of named scales and modes.
//
// The table is built once from an embedded YAML file at package init and
// never mutated afterwards. It provides two lookups: by name (used by the
// theory layer to resolve borrowed-scale references) and by wire index
// (used by the binary codec, which stores a 5-bit scale index).
//
// The catalog deliberately knows nothing about chords or analysis; it is
// plain data so that both the theory and codec layers can depend on it
// without cycles.
package catalog
