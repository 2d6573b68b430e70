// Package search finds the maximum-EV bet size for a pre-flop scenario.
// It offers an informed A*-style search guided by a scenario-level
// heuristic, and a brute-force enumeration used as a correctness oracle.
package search

import (
	"preflop-advisor/internal/equity"
	"preflop-advisor/internal/ev"
	"preflop-advisor/internal/opponent"
)

// Method names the algorithm that produced a Result.
type Method string

const (
	MethodAStar      Method = "a_star"
	MethodBruteForce Method = "brute_force"
)

// Scenario is one pre-flop decision point.
type Scenario struct {
	// Hand is the hero's starting hand in any accepted notation.
	Hand string
	// Position is "Button" or "Big Blind".
	Position string
	// HeroStack and OpponentStack are effective stacks in BB.
	HeroStack     float64
	OpponentStack float64
	// Tendency is the opponent response profile.
	Tendency opponent.Tendency
	// FacingBet is the opponent's bet in BB; zero means hero opens.
	FacingBet float64
	// PotSize is the pot in BB before the opponent's bet, normally 1.5.
	PotSize float64
}

// Node is one candidate bet size in the search space. Nodes live only for
// the duration of a single search call.
type Node struct {
	BetSize float64
	// EV is the modeled expected value of this bet size, g(n).
	EV float64
	// Score is f(n) = g(n) + h(n).
	Score float64
	// Action labels the bet size: fold, call, raise, or open.
	Action ev.Action
}

// Result is the outcome of one search.
type Result struct {
	Action        ev.Action `json:"action"`
	BetSize       float64   `json:"bet_size"`
	EV            float64   `json:"ev"`
	Method        Method    `json:"search_method"`
	NodesExplored int       `json:"nodes_explored"`
}

// Searcher runs bet-size searches against a shared EV model.
type Searcher struct {
	model  *ev.Model
	equity *equity.Table
}

// New returns a Searcher over the given model and equity table.
func New(model *ev.Model, tbl *equity.Table) *Searcher {
	return &Searcher{model: model, equity: tbl}
}

// nodeEV computes g(n) for a candidate bet size.
func (s *Searcher) nodeEV(sc Scenario, betSize float64, action ev.Action) float64 {
	if action == ev.Call {
		return s.model.CallEV(sc.Hand, sc.HeroStack, sc.FacingBet, sc.PotSize, sc.Tendency)
	}
	return s.model.Calculate(ev.Input{
		BetSize:   betSize,
		Hand:      sc.Hand,
		HeroStack: sc.HeroStack,
		Tendency:  sc.Tendency,
		PotSize:   sc.PotSize + sc.FacingBet,
		FacingBet: sc.FacingBet,
		Action:    action,
	})
}
