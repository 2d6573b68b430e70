package search

import (
	"fmt"
	"math"
	"strings"

	"preflop-advisor/internal/opponent"
)

// HeuristicType selects how h(n) is estimated. Neither heuristic is
// provably admissible; both may overestimate the true maximum EV, which
// is why results are validated against brute-force enumeration rather
// than trusted outright.
type HeuristicType string

const (
	// HandStrength weights hand equity by position and opponent tendency.
	// The recommended default.
	HandStrength HeuristicType = "hand_strength"
	// Optimistic assumes we simply win the pot with our equity. Faster
	// and looser than HandStrength.
	Optimistic HeuristicType = "optimistic"
)

// tendencyWeight discounts the estimate against opponents who re-raise
// often, since the EV model books a re-raise as a full loss.
var tendencyWeight = map[opponent.Tendency]float64{
	opponent.Tight:      1.0,
	opponent.Loose:      0.95,
	opponent.Aggressive: 0.7,
	opponent.Passive:    1.0,
	opponent.Unknown:    0.95,
}

// Heuristic estimates the achievable EV ceiling for a scenario. The
// estimate is scenario-level: constant across every sibling node in one
// search. An unknown type is a caller wiring error and fails hard.
func (s *Searcher) Heuristic(sc Scenario, ht HeuristicType) (float64, error) {
	switch ht {
	case HandStrength:
		return s.handStrength(sc), nil
	case Optimistic:
		return s.optimistic(sc), nil
	default:
		return 0, fmt.Errorf("unknown heuristic type %q: use %q or %q", ht, HandStrength, Optimistic)
	}
}

func (s *Searcher) handStrength(sc Scenario) float64 {
	eq := s.equity.Equity(sc.Hand)

	var base float64
	if sc.FacingBet <= 0 {
		// Opening: estimate with a moderate 3 BB bet.
		estBet := math.Min(3.0, sc.HeroStack)
		base = eq*(sc.PotSize+estBet*2) - estBet
	} else {
		// Facing a bet: estimate with the call.
		base = eq*(sc.PotSize+sc.FacingBet*2) - sc.FacingBet
	}

	posMult := 1.0
	switch strings.ToLower(strings.TrimSpace(sc.Position)) {
	case "button", "btn":
		posMult = 1.05
	}

	weight, ok := tendencyWeight[sc.Tendency]
	if !ok {
		weight = 0.95
	}

	return math.Max(0, base*posMult*weight)
}

func (s *Searcher) optimistic(sc Scenario) float64 {
	eq := s.equity.Equity(sc.Hand)

	if sc.FacingBet <= 0 {
		return eq * (sc.PotSize + 3.0)
	}
	return eq*(sc.PotSize+sc.FacingBet) - sc.FacingBet
}
