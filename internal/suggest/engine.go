package suggest

import (
	"context"
	"fmt"

	"github.com/calegray/harmonia/internal/codec"
	"github.com/calegray/harmonia/internal/theory"
)

// Engine records progressions and ranks continuations, attaching theory
// analysis as features.
type Engine struct {
	store *Store
}

// NewEngine wraps a progression store.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// RecordProgression encodes the chords and persists every adjacent pair
// under the named source. At least two chords are required.
func (e *Engine) RecordProgression(ctx context.Context, sourceName string, chords []theory.Chord) error {
	if len(chords) < 2 {
		return fmt.Errorf("progression needs at least 2 chords, got %d", len(chords))
	}
	hexes := make([]string, len(chords))
	for i, c := range chords {
		h, err := codec.ToHex(c)
		if err != nil {
			return fmt.Errorf("failed to encode chord %d: %w", i, err)
		}
		hexes[i] = h
	}

	sourceID, err := e.store.EnsureSource(ctx, sourceName)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(hexes); i++ {
		if err := e.store.AddTransition(ctx, sourceID, hexes[i], hexes[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Suggestion is one ranked continuation with analysis features.
type Suggestion struct {
	Chord      theory.Chord
	Hex        string
	Weight     int64
	Complexity float64
	Numeral    string
}

// Suggest ranks continuations of the given chord by observed frequency,
// analyzed against the named scale. limit <= 0 returns all.
func (e *Engine) Suggest(ctx context.Context, from theory.Chord, scaleName string, limit int) ([]Suggestion, error) {
	scale, err := theory.NamedScale(scaleName)
	if err != nil {
		return nil, err
	}
	fromHex, err := codec.ToHex(from)
	if err != nil {
		return nil, err
	}

	transitions, err := e.store.Continuations(ctx, fromHex, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(transitions))
	for _, tr := range transitions {
		chord, err := codec.FromHex(tr.ToHex)
		if err != nil {
			return nil, fmt.Errorf("stored transition %s is corrupt: %w", tr.ToHex, err)
		}
		score, err := theory.Complexity(chord, scaleName)
		if err != nil {
			return nil, err
		}
		numeral, err := theory.RomanNumeral(chord, scale)
		if err != nil {
			return nil, err
		}
		out = append(out, Suggestion{
			Chord:      chord,
			Hex:        tr.ToHex,
			Weight:     tr.Weight,
			Complexity: score,
			Numeral:    numeral.String(),
		})
	}
	return out, nil
}
