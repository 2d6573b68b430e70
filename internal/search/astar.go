package search

import (
	"container/heap"

	"preflop-advisor/internal/betsize"
	"preflop-advisor/internal/ev"
)

// nodeHeap is a max-heap over f-scores.
type nodeHeap []Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)         { *h = append(*h, x.(Node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}

// AStar searches the candidate bet sizes in descending f = g + h order,
// where g is the modeled EV and h is a scenario-constant heuristic
// ceiling. Once a popped node's f falls below the best g seen, no
// remaining node can beat it and the search stops.
//
// Because the heuristics are not proven admissible this is a fast
// approximate optimizer; agreement with BruteForce is checked in tests
// rather than guaranteed.
func (s *Searcher) AStar(sc Scenario, ht HeuristicType) (Result, error) {
	candidates := betsize.ForScenario(sc.HeroStack, sc.FacingBet, true)
	if len(candidates) == 0 {
		return Result{Action: ev.Fold, Method: MethodAStar}, nil
	}

	h, err := s.Heuristic(sc, ht)
	if err != nil {
		return Result{}, err
	}

	// Folding forfeits nothing beyond the posted blind, so its EV is 0.
	best := Node{BetSize: 0, EV: ev.FoldEV(), Score: ev.FoldEV() + h, Action: ev.Fold}

	open := make(nodeHeap, 0, len(candidates))
	for _, size := range candidates {
		action := betsize.ActionFor(size, sc.FacingBet)
		if action == ev.Fold {
			continue
		}
		g := s.nodeEV(sc, size, action)
		open = append(open, Node{BetSize: size, EV: g, Score: g + h, Action: action})
	}
	heap.Init(&open)

	explored := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(Node)
		explored++

		if current.EV > best.EV {
			best = current
		}
		if current.Score < best.EV {
			break
		}
	}

	return Result{
		Action:        betsize.ActionFor(best.BetSize, sc.FacingBet),
		BetSize:       best.BetSize,
		EV:            best.EV,
		Method:        MethodAStar,
		NodesExplored: explored,
	}, nil
}
