package search

import (
	"preflop-advisor/internal/betsize"
	"preflop-advisor/internal/ev"
)

// BruteForce evaluates every candidate bet size with no pruning and
// returns the max-EV action. It is the correctness oracle for AStar: the
// two must agree on action and, within floating-point tolerance, on EV.
func (s *Searcher) BruteForce(sc Scenario) Result {
	candidates := betsize.ForScenario(sc.HeroStack, sc.FacingBet, true)

	best := Node{BetSize: 0, EV: ev.FoldEV(), Action: ev.Fold}

	explored := 0
	for _, size := range candidates {
		action := betsize.ActionFor(size, sc.FacingBet)
		if action == ev.Fold {
			continue
		}
		g := s.nodeEV(sc, size, action)
		explored++

		if g > best.EV {
			best = Node{BetSize: size, EV: g, Action: action}
		}
	}

	return Result{
		Action:        betsize.ActionFor(best.BetSize, sc.FacingBet),
		BetSize:       best.BetSize,
		EV:            best.EV,
		Method:        MethodBruteForce,
		NodesExplored: explored,
	}
}

// MaxEV returns the best achievable EV for a scenario by exhaustive
// evaluation. Exposed for comparison and testing, not for use inside the
// search itself.
func (s *Searcher) MaxEV(sc Scenario) float64 {
	return s.BruteForce(sc).EV
}
