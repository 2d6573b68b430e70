// Package ev computes the expected value, in big blinds, of a candidate
// pre-flop action against the opponent response model.
package ev

import (
	"math"

	"preflop-advisor/internal/equity"
	"preflop-advisor/internal/opponent"
)

// Action is the pre-flop action a bet size represents.
type Action string

const (
	Fold  Action = "fold"
	Call  Action = "call"
	Raise Action = "raise"
	Open  Action = "open"
)

// BasePotSize is the heads-up pre-flop pot before any action: small blind
// plus big blind.
const BasePotSize = 1.5

// Model computes expected values against the immutable equity table.
type Model struct {
	equity *equity.Table
}

// NewModel returns an EV model backed by the given equity table.
func NewModel(tbl *equity.Table) *Model {
	return &Model{equity: tbl}
}

// Input describes one candidate action to evaluate.
type Input struct {
	// BetSize is our total bet in BB: the opening raise size, the amount
	// called, or the total raise size over an existing bet.
	BetSize float64
	// Hand is the hero's starting hand in any accepted notation.
	Hand string
	// HeroStack is the acting player's stack in BB; investment is capped
	// here.
	HeroStack float64
	// Tendency selects the opponent response profile.
	Tendency opponent.Tendency
	// PotSize is the current pot in BB, already including the opponent's
	// bet when facing one.
	PotSize float64
	// FacingBet is the opponent's bet in BB; zero means an opening action.
	FacingBet float64
	// Action classifies BetSize as open, call, or raise.
	Action Action
}

// Calculate returns the expected value of the action in big blinds.
//
//	EV = fold_prob × pot
//	   + call_prob × (equity × total_pot_if_called − investment)
//	   + raise_prob × (−investment)
//
// The opponent re-raise branch is modeled conservatively as a full loss of
// the investment. A non-positive capped investment means no action is
// taken and yields EV 0.
func (m *Model) Calculate(in Input) float64 {
	investment := in.BetSize
	if in.FacingBet > 0 && in.Action == Call {
		investment = in.FacingBet
	}

	investment = math.Min(investment, in.HeroStack)
	if investment <= 0 {
		return 0
	}

	probs := opponent.AdjustedProbs(in.Tendency, in.BetSize)
	eq := m.equity.Equity(in.Hand)

	var totalPotIfCalled float64
	switch {
	case in.FacingBet > 0 && in.Action == Call:
		// The opponent's bet is already in the pot; calling closes the
		// action with no further money from them.
		totalPotIfCalled = in.PotSize + investment
	case in.FacingBet > 0 && in.Action == Raise:
		// The opponent calls the difference between our raise and their
		// existing bet.
		totalPotIfCalled = in.PotSize + investment + (investment - in.FacingBet)
	default:
		// Opening: the opponent matches our bet in full.
		totalPotIfCalled = in.PotSize + investment + investment
	}

	evFold := probs.Fold * in.PotSize
	evCall := probs.Call * (eq*totalPotIfCalled - investment)
	evRaise := probs.Raise * (-investment)

	return evFold + evCall + evRaise
}

// CallEV is the expected value of calling an opponent's bet. The pot is
// the value before the opponent's bet was made.
func (m *Model) CallEV(hand string, heroStack, facingBet, potSize float64, t opponent.Tendency) float64 {
	return m.Calculate(Input{
		BetSize:   facingBet,
		Hand:      hand,
		HeroStack: heroStack,
		Tendency:  t,
		PotSize:   potSize + facingBet,
		FacingBet: facingBet,
		Action:    Call,
	})
}

// FoldEV is the expected value of folding: zero, since blinds already
// posted are sunk.
func FoldEV() float64 { return 0 }
