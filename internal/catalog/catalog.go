package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scales.yaml
var scalesYAML []byte

// Entry describes one named scale or mode.
type Entry struct {
	// Name is the canonical lower_snake name ("major", "harmonic_minor").
	Name string `yaml:"name"`

	// Aliases are alternative names resolving to the same entry.
	Aliases []string `yaml:"aliases"`

	// Index is the 5-bit wire index used by the binary chord format.
	Index uint8 `yaml:"index"`

	// Pattern is the 12-slot chromatic presence bitmap, tonic at slot 0.
	Pattern [12]uint8 `yaml:"pattern"`
}

var (
	entries []Entry
	byName  map[string]Entry
	byIndex map[uint8]Entry
)

func init() {
	var raw []Entry
	if err := yaml.Unmarshal(scalesYAML, &raw); err != nil {
		panic(fmt.Sprintf("catalog: embedded scales.yaml is corrupt: %v", err))
	}

	byName = make(map[string]Entry, len(raw)*2)
	byIndex = make(map[uint8]Entry, len(raw))

	for _, e := range raw {
		if e.Name == "" {
			panic("catalog: embedded scales.yaml has an entry without a name")
		}
		if e.Pattern[0] != 1 {
			panic(fmt.Sprintf("catalog: scale %q does not contain its tonic", e.Name))
		}
		if _, dup := byIndex[e.Index]; dup {
			panic(fmt.Sprintf("catalog: duplicate wire index %d (%s)", e.Index, e.Name))
		}
		byIndex[e.Index] = e
		byName[e.Name] = e
		for _, alias := range e.Aliases {
			byName[strings.ToLower(alias)] = e
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
}

// ByName looks up a scale by canonical name or alias, case-insensitively.
func ByName(name string) (Entry, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// ByIndex looks up a scale by its wire index.
func ByIndex(index uint8) (Entry, bool) {
	e, ok := byIndex[index]
	return e, ok
}

// Entries returns all catalog entries ordered by wire index.
// The returned slice is a copy; callers may not mutate catalog state.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].Aliases = append([]string(nil), out[i].Aliases...)
	}
	return out
}
