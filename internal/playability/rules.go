package playability

import "preflop-advisor/internal/kb"

// Fact names shared between the deriver and the rule set.
const (
	factPositionButton   = "position_Button"
	factPositionBigBlind = "position_Big_Blind"
	factPositionValid    = "position_valid"

	factStrengthPremium  = "hand_strength_premium"
	factStrengthStrong   = "hand_strength_strong"
	factStrengthPlayable = "hand_strength_playable"
	factStrengthMarginal = "hand_strength_marginal"

	factOppTight           = "opponent_Tight"
	factOppLoose           = "opponent_Loose"
	factOppAggressive      = "opponent_Aggressive"
	factOppPassive         = "opponent_Passive"
	factOppUnknown         = "opponent_Unknown"
	factOppAggressiveLoose = "opponent_Aggressive_Loose"

	factStackUltraShort = "stack_size_ultra_short"
	factStackShort      = "stack_size_short"
	factStackAdequate   = "stack_size_adequate"

	factFacingBet       = "facing_bet"
	factFacingBetSmall  = "facing_bet_small"
	factFacingBetMedium = "facing_bet_medium"
	factFacingBetLarge  = "facing_bet_large"

	factCanProceed    = "can_proceed"
	factStackOK       = "stack_ok"
	factPlayable      = "playable"
	factNotPlayable   = "not_playable"
	factFinalPlayable = "final_playable"
)

// decisionRules is the fixed CNF rule set for pre-flop playability. An
// implication A → B is encoded as the clause (¬A ∨ B).
func decisionRules() []kb.Rule {
	return []kb.Rule{
		{
			Name: "Rule 1: Valid Position",
			CNF:  "(¬position_valid ∨ can_proceed) ∧ (position_valid ∨ not_playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionValid), kb.Pos(factCanProceed)},
				{kb.Pos(factPositionValid), kb.Pos(factNotPlayable)},
			},
			Description: "Position must be Button or Big Blind to proceed",
		},
		{
			Name: "Rule 2: Button vs Aggressive/Loose",
			CNF:  "(¬position_Button ∨ ¬hand_strength_strong ∨ ¬opponent_Aggressive_Loose ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionButton), kb.Neg(factStrengthStrong), kb.Neg(factOppAggressiveLoose), kb.Pos(factPlayable)},
			},
			Description: "Button with Strong+ hands vs Aggressive/Loose opponent → playable",
		},
		{
			Name: "Rule 3: Button vs Tight",
			CNF:  "(¬position_Button ∨ ¬hand_strength_marginal ∨ ¬opponent_Tight ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionButton), kb.Neg(factStrengthMarginal), kb.Neg(factOppTight), kb.Pos(factPlayable)},
			},
			Description: "Button with Marginal+ hands vs Tight opponent → playable",
		},
		{
			Name: "Rule 4: Button vs Passive",
			CNF:  "(¬position_Button ∨ ¬hand_strength_playable ∨ ¬opponent_Passive ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionButton), kb.Neg(factStrengthPlayable), kb.Neg(factOppPassive), kb.Pos(factPlayable)},
			},
			Description: "Button with Playable+ hands vs Passive opponent → playable",
		},
		{
			Name: "Rule 5: Button vs Unknown",
			CNF:  "(¬position_Button ∨ ¬hand_strength_playable ∨ ¬opponent_Unknown ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionButton), kb.Neg(factStrengthPlayable), kb.Neg(factOppUnknown), kb.Pos(factPlayable)},
			},
			Description: "Button with Playable+ hands vs Unknown opponent → playable",
		},
		{
			Name: "Rule 6: Big Blind vs Unknown",
			CNF:  "(¬position_Big_Blind ∨ ¬hand_strength_strong ∨ ¬opponent_Unknown ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factPositionBigBlind), kb.Neg(factStrengthStrong), kb.Neg(factOppUnknown), kb.Pos(factPlayable)},
			},
			Description: "Big Blind with Strong+ hands vs Unknown opponent → playable",
		},
		{
			Name: "Rule 7: Ultra-Short Stack Premium",
			CNF:  "(¬stack_size_ultra_short ∨ ¬hand_strength_premium ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factStackUltraShort), kb.Neg(factStrengthPremium), kb.Pos(factPlayable)},
			},
			Description: "Ultra-short stack (<10 BB) requires Premium hands",
		},
		{
			Name: "Rule 8: Short Stack Strong",
			CNF:  "(¬stack_size_short ∨ ¬hand_strength_strong ∨ playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factStackShort), kb.Neg(factStrengthStrong), kb.Pos(factPlayable)},
			},
			Description: "Short stack (10-20 BB) requires Strong+ hands",
		},
		{
			Name: "Rule 9: Adequate Stack",
			CNF:  "(¬stack_size_adequate ∨ ¬can_proceed ∨ stack_ok)",
			Clauses: []kb.Clause{
				{kb.Neg(factStackAdequate), kb.Neg(factCanProceed), kb.Pos(factStackOK)},
			},
			Description: "Adequate stack (≥20 BB) allows all playable hands",
		},
		{
			Name: "Rule 10: Final Decision",
			CNF:  "(¬can_proceed ∨ ¬stack_ok ∨ ¬playable ∨ final_playable)",
			Clauses: []kb.Clause{
				{kb.Neg(factCanProceed), kb.Neg(factStackOK), kb.Neg(factPlayable), kb.Pos(factFinalPlayable)},
			},
			Description: "All conditions met → hand is playable",
		},
	}
}
