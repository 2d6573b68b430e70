// Package advisor is the unified decision entry point: it runs the
// playability filter, invokes the bet-size search, and renders the
// recommendation with a human-readable reason.
package advisor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"preflop-advisor/internal/betsize"
	"preflop-advisor/internal/equity"
	"preflop-advisor/internal/ev"
	"preflop-advisor/internal/opponent"
	"preflop-advisor/internal/playability"
	"preflop-advisor/internal/search"
)

// Advisor composes the playability filter and the bet-size search.
type Advisor struct {
	searcher *search.Searcher
	logger   *log.Logger
}

// New builds an Advisor over the embedded equity table.
func New(logger *log.Logger) (*Advisor, error) {
	tbl, err := equity.Load()
	if err != nil {
		return nil, fmt.Errorf("loading equity table: %w", err)
	}
	return &Advisor{
		searcher: search.New(ev.NewModel(tbl), tbl),
		logger:   logger.WithPrefix("advisor"),
	}, nil
}

// Request describes one recommendation query.
type Request struct {
	// Hand is the starting hand in any accepted notation.
	Hand string `json:"hand"`
	// Position is "Button" or "Big Blind".
	Position string `json:"position"`
	// HeroStack and OpponentStack are effective stacks in BB.
	HeroStack     float64 `json:"hero_stack"`
	OpponentStack float64 `json:"opponent_stack"`
	// Tendency is the opponent profile name.
	Tendency string `json:"opponent_tendency"`
	// FacingBet is the opponent's bet in BB; zero means hero opens.
	FacingBet float64 `json:"facing_bet,omitempty"`
	// PotSize is the pot in BB before the opponent's bet. Zero means the
	// standard blinds-only pot of 1.5 BB.
	PotSize float64 `json:"pot_size,omitempty"`
	// Algorithm selects the search; empty defaults to a_star.
	Algorithm search.Method `json:"search_algorithm,omitempty"`
	// Heuristic selects h(n) for a_star; empty defaults to hand_strength.
	Heuristic search.HeuristicType `json:"heuristic,omitempty"`
	// SkipPlayabilityFilter bypasses the rule-based filter and always
	// runs the search.
	SkipPlayabilityFilter bool `json:"skip_playability_filter,omitempty"`
	// Precomputed reuses an existing playability verdict instead of
	// deciding again.
	Precomputed *playability.Result `json:"-"`
}

// Decision is a full recommendation.
type Decision struct {
	Action        ev.Action           `json:"action"`
	BetSize       float64             `json:"bet_size"`
	ExpectedValue float64             `json:"expected_value"`
	Reason        string              `json:"reason"`
	SearchMethod  search.Method       `json:"search_algorithm_used"`
	NodesExplored int                 `json:"nodes_explored"`
	Playability   *playability.Result `json:"playability_result,omitempty"`
}

// Recommend filters the hand for playability, then searches the bet-size
// space for the max-EV action. A hand the filter rejects folds
// immediately with zero EV and the filter's reason; the search is never
// invoked for it. The only error paths are programmer errors: an unknown
// search algorithm or heuristic type.
func (a *Advisor) Recommend(req Request) (Decision, error) {
	if req.PotSize <= 0 {
		req.PotSize = ev.BasePotSize
	}
	if req.Algorithm == "" {
		req.Algorithm = search.MethodAStar
	}
	if req.Heuristic == "" {
		req.Heuristic = search.HandStrength
	}

	verdict := req.Precomputed
	if verdict == nil && !req.SkipPlayabilityFilter {
		v := playability.Decide(playability.Scenario{
			Hand:      req.Hand,
			Position:  req.Position,
			StackSize: int(req.HeroStack),
			Tendency:  req.Tendency,
			FacingBet: req.FacingBet,
		})
		verdict = &v
	}

	if verdict != nil && !verdict.Playable {
		a.logger.Debug("filtered by playability", "hand", req.Hand, "reason", verdict.Reason)
		return Decision{
			Action:        ev.Fold,
			BetSize:       0,
			ExpectedValue: 0,
			Reason:        verdict.Reason,
			SearchMethod:  req.Algorithm,
			Playability:   verdict,
		}, nil
	}

	tendency, _ := opponent.ParseTendency(req.Tendency)
	scenario := search.Scenario{
		Hand:          req.Hand,
		Position:      req.Position,
		HeroStack:     req.HeroStack,
		OpponentStack: req.OpponentStack,
		Tendency:      tendency,
		FacingBet:     req.FacingBet,
		PotSize:       req.PotSize,
	}

	var result search.Result
	var err error
	switch req.Algorithm {
	case search.MethodAStar:
		result, err = a.searcher.AStar(scenario, req.Heuristic)
		if err != nil {
			return Decision{}, err
		}
	case search.MethodBruteForce:
		result = a.searcher.BruteForce(scenario)
	default:
		return Decision{}, fmt.Errorf("unknown search algorithm %q: use %q or %q",
			req.Algorithm, search.MethodAStar, search.MethodBruteForce)
	}

	decision := Decision{
		Action:        result.Action,
		BetSize:       result.BetSize,
		ExpectedValue: result.EV,
		Reason:        a.reason(req, result),
		SearchMethod:  result.Method,
		NodesExplored: result.NodesExplored,
		Playability:   verdict,
	}

	a.logger.Debug("recommendation",
		"hand", req.Hand,
		"position", req.Position,
		"action", decision.Action,
		"bet_size", decision.BetSize,
		"ev", decision.ExpectedValue,
		"method", decision.SearchMethod,
		"nodes", decision.NodesExplored,
	)
	return decision, nil
}

// reason renders the per-action explanation, naming the EV and the search
// method that produced it.
func (a *Advisor) reason(req Request, result search.Result) string {
	switch result.Action {
	case ev.Fold:
		if req.FacingBet > 0 {
			return fmt.Sprintf("Fold to the %.1f BB bet: no profitable continue found (EV %.2f BB, %s search).",
				req.FacingBet, result.EV, result.Method)
		}
		return fmt.Sprintf("Fold: no profitable opening size found (EV %.2f BB, %s search).",
			result.EV, result.Method)
	case ev.Call:
		return fmt.Sprintf("Call the %.1f BB bet: expected value %.2f BB (%s search).",
			req.FacingBet, result.EV, result.Method)
	case ev.Raise:
		return fmt.Sprintf("Raise to %s: expected value %.2f BB (%s search).",
			betsize.Describe(result.BetSize, req.HeroStack), result.EV, result.Method)
	default:
		return fmt.Sprintf("Open to %s: expected value %.2f BB (%s search).",
			betsize.Describe(result.BetSize, req.HeroStack), result.EV, result.Method)
	}
}
