// Package equity provides the heads-up win-probability lookup for the 169
// canonical starting hands. The table is loaded once at process start and
// is immutable afterwards, so it is safe to share across concurrent
// decision calls.
package equity

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"preflop-advisor/internal/hands"
)

//go:embed data/hand_equity.csv
var dataFS embed.FS

// DefaultEquity is used when a hand is missing from the table.
const DefaultEquity = 0.5

// Table is a read-only mapping from canonical hand label to win
// probability in [0, 1].
type Table struct {
	probs map[string]float64
}

// Load parses the embedded equity data. Call once at startup and pass the
// table to everything that needs it.
func Load() (*Table, error) {
	f, err := dataFS.Open("data/hand_equity.csv")
	if err != nil {
		return nil, fmt.Errorf("opening equity data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing equity data: %w", err)
	}

	probs := make(map[string]float64, hands.Count)
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		p, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("equity data row %d: %w", i+1, err)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("equity data row %d: probability %f out of range", i+1, p)
		}
		probs[rec[0]] = p
	}

	if len(probs) != hands.Count {
		return nil, fmt.Errorf("equity data holds %d hands, want %d", len(probs), hands.Count)
	}
	return &Table{probs: probs}, nil
}

// MustLoad is Load for program startup, panicking on malformed embedded
// data.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the win probability for a canonical hand label.
func (t *Table) Lookup(hand string) (float64, bool) {
	p, ok := t.probs[hand]
	return p, ok
}

// Equity resolves a raw hand string (aliases included) and returns its win
// probability, or DefaultEquity when the hand is unknown to the table.
func (t *Table) Equity(hand string) float64 {
	norm, ok := hands.Normalize(hand)
	if !ok {
		return DefaultEquity
	}
	if p, ok := t.probs[norm]; ok {
		return p
	}
	return DefaultEquity
}
