package advisor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"preflop-advisor/internal/hands"
)

// RangeEntry pairs a canonical hand with its recommendation.
type RangeEntry struct {
	Hand     string   `json:"hand"`
	Rank     int      `json:"rank"`
	Tier     string   `json:"tier"`
	Decision Decision `json:"decision"`
}

// EvaluateRange runs the same scenario for every canonical starting hand
// and returns the entries in rank order. Hands are evaluated in parallel;
// the scenario's Hand field is ignored.
func (a *Advisor) EvaluateRange(ctx context.Context, req Request) ([]RangeEntry, error) {
	all := hands.All()
	entries := make([]RangeEntry, len(all))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, hand := range all {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hr := req
			hr.Hand = hand
			decision, err := a.Recommend(hr)
			if err != nil {
				return err
			}
			entries[i] = RangeEntry{
				Hand:     hand,
				Rank:     i + 1,
				Tier:     hands.TierOf(i + 1).String(),
				Decision: decision,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
