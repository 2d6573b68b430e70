package playability

import (
	"fmt"
	"strings"

	"preflop-advisor/internal/hands"
	"preflop-advisor/internal/kb"
)

// Scenario is the raw input to a playability decision. Strings are
// accepted as users type them; the deriver resolves them or marks them
// invalid, it never fails.
type Scenario struct {
	// Hand is the starting hand in any accepted notation.
	Hand string
	// Position is "Button" or "Big Blind", including common synonyms.
	Position string
	// StackSize is the hero's stack in big blinds.
	StackSize int
	// Tendency is the opponent profile name.
	Tendency string
	// FacingBet is the opponent's bet in BB; zero or negative means hero
	// is opening.
	FacingBet float64
}

// Facing-bet size buckets, recorded as facts for rule extension.
const (
	facingBetSmallMax  = 3.0
	facingBetMediumMax = 6.0
)

// derived carries what the fact deriver learned about the scenario.
type derived struct {
	positionValid bool
	handRank      int
	handTier      hands.Tier
	handKnown     bool
	factsAdded    []string
}

// deriveFacts resolves the scenario into knowledge-base facts. An
// unrecognized position short-circuits: no hand or stack facts are
// derived. An unrecognized hand stops after the position facts.
func deriveFacts(sc Scenario, base *kb.KnowledgeBase) derived {
	var d derived

	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(sc.Position), "_", " ")) {
	case "button", "btn":
		base.AddFact(factPositionButton, true)
		base.AddFact(factPositionBigBlind, false)
		d.factsAdded = append(d.factsAdded, "position_Button = true")
	case "big blind", "bb", "bigblind":
		base.AddFact(factPositionButton, false)
		base.AddFact(factPositionBigBlind, true)
		d.factsAdded = append(d.factsAdded, "position_Big_Blind = true")
	default:
		base.AddFact(factPositionValid, false)
		d.factsAdded = append(d.factsAdded, "position_valid = false")
		return d
	}

	d.positionValid = true
	base.AddFact(factPositionValid, true)
	d.factsAdded = append(d.factsAdded, "position_valid = true")

	rank, ok := hands.Rank(sc.Hand)
	if !ok {
		return d
	}
	d.handRank = rank
	d.handTier = hands.TierOf(rank)
	d.handKnown = true

	// Strength tiers are cumulative: a premium hand is also strong,
	// playable, and marginal.
	base.AddFact(factStrengthPremium, rank <= hands.PremiumMaxRank)
	base.AddFact(factStrengthStrong, rank <= hands.StrongMaxRank)
	base.AddFact(factStrengthPlayable, rank <= hands.PlayableMaxRank)
	base.AddFact(factStrengthMarginal, rank <= hands.MarginalMaxRank)
	d.factsAdded = append(d.factsAdded,
		fmt.Sprintf("hand_strength_%s = true (rank %d)", strings.ToLower(d.handTier.String()), rank))

	tendency := strings.ToLower(strings.TrimSpace(sc.Tendency))
	base.AddFact(factOppTight, tendency == "tight")
	base.AddFact(factOppLoose, tendency == "loose")
	base.AddFact(factOppAggressive, tendency == "aggressive")
	base.AddFact(factOppPassive, tendency == "passive")
	base.AddFact(factOppUnknown, tendency == "unknown")
	base.AddFact(factOppAggressiveLoose, tendency == "aggressive" || tendency == "loose")
	d.factsAdded = append(d.factsAdded, fmt.Sprintf("opponent_%s = true", sc.Tendency))

	base.AddFact(factStackUltraShort, sc.StackSize < 10)
	base.AddFact(factStackShort, sc.StackSize >= 10 && sc.StackSize < 20)
	base.AddFact(factStackAdequate, sc.StackSize >= 20)
	d.factsAdded = append(d.factsAdded, fmt.Sprintf("stack_size_adequate = %t", sc.StackSize >= 20))

	if sc.FacingBet > 0 {
		base.AddFact(factFacingBet, true)
		base.AddFact(factFacingBetSmall, sc.FacingBet <= facingBetSmallMax)
		base.AddFact(factFacingBetMedium, sc.FacingBet > facingBetSmallMax && sc.FacingBet <= facingBetMediumMax)
		base.AddFact(factFacingBetLarge, sc.FacingBet > facingBetMediumMax)
		d.factsAdded = append(d.factsAdded, fmt.Sprintf("facing_bet = true (%.1f BB)", sc.FacingBet))
	} else {
		base.AddFact(factFacingBet, false)
	}

	return d
}
