// Package playability decides whether a pre-flop hand is worth playing.
// A fixed CNF rule set over scenario facts yields a verdict, a reason
// string, and a full inference trace for auditing.
package playability

import (
	"fmt"

	"preflop-advisor/internal/hands"
	"preflop-advisor/internal/kb"
)

// Result is a playability verdict with its audit trail.
type Result struct {
	Playable       bool        `json:"playable"`
	Reason         string      `json:"reason"`
	KnowledgeBase  kb.Snapshot `json:"knowledge_base"`
	HandNormalized string      `json:"hand_normalized,omitempty"`
	HandRank       int         `json:"hand_rank,omitempty"`
	HandTier       string      `json:"hand_tier,omitempty"`
	InferenceChain []string    `json:"inference_chain"`
}

// Decide evaluates a scenario against the rule set. Bad input never
// produces an error: unrecognized positions and hands come back as
// not-playable results with a specific reason and a partial trace.
func Decide(sc Scenario) Result {
	base := kb.New()
	for _, rule := range decisionRules() {
		base.AddRule(rule)
	}

	d := deriveFacts(sc, base)

	if !d.positionValid {
		return Result{
			Playable:       false,
			Reason:         "Invalid position; must be Button or Big Blind.",
			KnowledgeBase:  base.Snapshot(),
			InferenceChain: d.factsAdded,
		}
	}
	if !d.handKnown {
		return Result{
			Playable:       false,
			Reason:         "Unrecognized hand; cannot evaluate.",
			KnowledgeBase:  base.Snapshot(),
			InferenceChain: d.factsAdded,
		}
	}

	normalized, _ := hands.Normalize(sc.Hand)
	chain := d.factsAdded

	_, derivations := base.ForwardChain()
	chain = append(chain, derivations...)

	// Rule 1: a valid position lets the decision proceed.
	base.AddFact(factCanProceed, true)
	chain = append(chain, "Rule 1: position_valid → can_proceed")

	chain = append(chain, deriveStackOK(sc, base)...)
	chain = append(chain, derivePlayable(base)...)

	canProceed, _ := base.Fact(factCanProceed)
	stackOK, _ := base.Fact(factStackOK)
	playable, _ := base.Fact(factPlayable)

	// Rule 10, proven by backward chaining with a direct conjunction as
	// the safety net.
	final, proofChain := base.Query(factFinalPlayable)
	if final {
		chain = append(chain, proofChain...)
		chain = append(chain, "Rule 10: final_playable proven by backward chaining")
	} else {
		final = canProceed && stackOK && playable
		base.AddFact(factFinalPlayable, final)
		if final {
			chain = append(chain, "Rule 10: can_proceed AND stack_ok AND playable → final_playable (direct evaluation)")
		} else {
			chain = append(chain, "Rule 10: conditions not met → not final_playable")
		}
	}

	return Result{
		Playable:       final,
		Reason:         buildReason(sc, base, normalized, d.handTier, final),
		KnowledgeBase:  base.Snapshot(),
		HandNormalized: normalized,
		HandRank:       d.handRank,
		HandTier:       d.handTier.String(),
		InferenceChain: chain,
	}
}

// deriveStackOK establishes stack_ok. Backward chaining can prove it for
// adequate stacks via Rule 9; short stacks fall back to direct evaluation
// of Rules 7 and 8 against the strength facts.
func deriveStackOK(sc Scenario, base *kb.KnowledgeBase) []string {
	if ok, proofChain := base.Query(factStackOK); ok {
		return append(proofChain, "stack_ok proven by backward chaining")
	}

	var chain []string
	switch {
	case sc.StackSize < 10:
		premium, _ := base.Fact(factStrengthPremium)
		base.AddFact(factStackOK, premium)
		if premium {
			chain = append(chain, "Rule 7: ultra-short stack with premium hand → stack_ok (direct evaluation)")
		} else {
			chain = append(chain, "Rule 7: ultra-short stack requires premium hand")
		}
	case sc.StackSize < 20:
		strong, _ := base.Fact(factStrengthStrong)
		base.AddFact(factStackOK, strong)
		if strong {
			chain = append(chain, "Rule 8: short stack with strong+ hand → stack_ok (direct evaluation)")
		} else {
			chain = append(chain, "Rule 8: short stack requires strong+ hand")
		}
	default:
		base.AddFact(factStackOK, true)
		chain = append(chain, "Rule 9: adequate stack → stack_ok (direct evaluation)")
	}
	return chain
}

// derivePlayable evaluates Rules 2 through 6 in their fixed order and
// takes the first that matches.
func derivePlayable(base *kb.KnowledgeBase) []string {
	fact := func(name string) bool {
		v, _ := base.Fact(name)
		return v
	}

	conditions := []struct {
		position string
		opponent string
		strength string
		entry    string
	}{
		{factPositionButton, factOppAggressiveLoose, factStrengthStrong, "Rule 2: Button vs Aggressive/Loose with Strong+ → playable"},
		{factPositionButton, factOppTight, factStrengthMarginal, "Rule 3: Button vs Tight with Marginal+ → playable"},
		{factPositionButton, factOppPassive, factStrengthPlayable, "Rule 4: Button vs Passive with Playable+ → playable"},
		{factPositionButton, factOppUnknown, factStrengthPlayable, "Rule 5: Button vs Unknown with Playable+ → playable"},
		{factPositionBigBlind, factOppUnknown, factStrengthStrong, "Rule 6: Big Blind vs Unknown with Strong+ → playable"},
	}

	for _, c := range conditions {
		if fact(c.position) && fact(c.opponent) && fact(c.strength) {
			base.AddFact(factPlayable, true)
			return []string{c.entry}
		}
	}

	base.AddFact(factPlayable, false)
	return []string{"No rule satisfied → not playable"}
}

// buildReason renders the verdict for humans. Failure causes are reported
// in priority order: position, hand strength, stack depth, then a generic
// catch-all.
func buildReason(sc Scenario, base *kb.KnowledgeBase, normalized string, tier hands.Tier, playable bool) string {
	if playable {
		return fmt.Sprintf("Play %s: %s hand, %s, %d BB vs %s.",
			normalized, tier, sc.Position, sc.StackSize, sc.Tendency)
	}

	prefix := fmt.Sprintf("Hand %s (%s)", normalized, tier)
	if v, _ := base.Fact(factPositionValid); !v {
		return prefix + " invalid position."
	}
	if v, _ := base.Fact(factPlayable); !v {
		return fmt.Sprintf("%s too weak for %s vs %s.", prefix, sc.Position, sc.Tendency)
	}
	if stackOK, _ := base.Fact(factStackOK); !stackOK {
		return fmt.Sprintf("%s stack too short (%d BB).", prefix, sc.StackSize)
	}
	return prefix + " does not meet playability criteria."
}
