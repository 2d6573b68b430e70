package server

import (
	"errors"
	"fmt"
	"math"

	"preflop-advisor/internal/advisor"
	"preflop-advisor/internal/ev"
	"preflop-advisor/internal/search"
)

// Betting errors surfaced to the API layer.
var (
	ErrGameOver      = errors.New("hand is already over")
	ErrInvalidAction = errors.New("invalid action")
)

// investedTolerance treats investments within a cent of a BB as matched.
const investedTolerance = 0.01

// ActionOutcome describes the table state after one action.
type ActionOutcome struct {
	Message       string `json:"message"`
	GameOver      bool   `json:"game_over"`
	Winner        string `json:"winner,omitempty"`
	ShowdownReady bool   `json:"showdown_ready"`
}

// PlayerAct applies the player's fold, call, or raise to the session.
func (s *Session) PlayerAct(action string, betSize float64) (ActionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GameOver {
		return ActionOutcome{}, ErrGameOver
	}

	switch action {
	case "fold":
		s.GameOver = true
		s.Winner = "ai"
		s.History = append(s.History, "player folds")
		return ActionOutcome{Message: "You folded. AI wins!", GameOver: true, Winner: "ai"}, nil

	case "call":
		// Matching the opponent's investment covers the blind-limp case,
		// where no raise has set CurrentBet yet.
		callAmount := math.Max(s.CurrentBet, s.AIInvested) - s.PlayerInvested
		if callAmount < 0 {
			callAmount = 0
		}
		s.PlayerInvested += callAmount
		s.Pot += callAmount
		s.PlayerStack -= callAmount
		s.History = append(s.History, fmt.Sprintf("player calls %.1f", callAmount))

		if math.Abs(s.PlayerInvested-s.AIInvested) < investedTolerance {
			return ActionOutcome{Message: "Both players called. Showdown!", ShowdownReady: true}, nil
		}
		return ActionOutcome{Message: "You called. AI to act..."}, nil

	case "raise":
		if betSize <= s.CurrentBet {
			return ActionOutcome{}, fmt.Errorf("%w: raise to %.1f does not exceed the current bet %.1f",
				ErrInvalidAction, betSize, s.CurrentBet)
		}
		raiseAmount := betSize - s.PlayerInvested
		s.PlayerInvested = betSize
		s.Pot += raiseAmount
		s.PlayerStack -= raiseAmount
		s.CurrentBet = betSize
		s.LastBettor = "player"
		s.History = append(s.History, fmt.Sprintf("player raises to %.1f", betSize))
		return ActionOutcome{Message: fmt.Sprintf("You raised to %.1fx BB. AI to act...", betSize)}, nil

	default:
		return ActionOutcome{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

// AIActionResult is the AI's move plus the decision that produced it.
type AIActionResult struct {
	Action   ev.Action         `json:"action"`
	BetSize  float64           `json:"bet_size"`
	EV       float64           `json:"ev"`
	Reason   string            `json:"reason"`
	Decision *advisor.Decision `json:"decision,omitempty"`
	Outcome  ActionOutcome     `json:"outcome"`
}

// AIAct asks the advisor for the AI's move and applies it to the
// session.
func (s *Session) AIAct(adv *advisor.Advisor, game GameSettings) (AIActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GameOver {
		return AIActionResult{}, ErrGameOver
	}

	position := "Big Blind"
	if !s.PlayerIsButton {
		position = "Button"
	}

	var facing float64
	if s.LastBettor == "player" {
		facing = s.CurrentBet
	}

	decision, err := adv.Recommend(advisor.Request{
		Hand:          s.AIHand,
		Position:      position,
		HeroStack:     s.AIStack,
		OpponentStack: s.PlayerStack,
		Tendency:      s.AITendency,
		FacingBet:     facing,
		// The advisor wants the pot before the outstanding bet.
		PotSize:   s.Pot - facing,
		Algorithm: search.Method(game.SearchAlgorithm),
		Heuristic: search.HeuristicType(game.Heuristic),
	})
	if err != nil {
		return AIActionResult{}, err
	}

	result := AIActionResult{
		Action:   decision.Action,
		BetSize:  decision.BetSize,
		EV:       decision.ExpectedValue,
		Reason:   decision.Reason,
		Decision: &decision,
	}

	switch decision.Action {
	case ev.Fold:
		s.GameOver = true
		s.Winner = "player"
		s.History = append(s.History, "ai folds")
		result.Outcome = ActionOutcome{Message: "AI folds. You win!", GameOver: true, Winner: "player"}

	case ev.Call:
		callAmount := math.Max(s.CurrentBet, s.PlayerInvested) - s.AIInvested
		if callAmount < 0 {
			callAmount = 0
		}
		s.AIInvested += callAmount
		s.Pot += callAmount
		s.AIStack -= callAmount
		s.History = append(s.History, fmt.Sprintf("ai calls %.1f", callAmount))

		if math.Abs(s.PlayerInvested-s.AIInvested) < investedTolerance {
			result.Outcome = ActionOutcome{Message: "AI calls. Showdown!", ShowdownReady: true}
		} else {
			result.Outcome = ActionOutcome{Message: "AI calls."}
		}

	case ev.Raise, ev.Open:
		amount := decision.BetSize - s.AIInvested
		s.AIInvested = decision.BetSize
		s.Pot += amount
		s.AIStack -= amount
		s.CurrentBet = decision.BetSize
		s.LastBettor = "ai"
		s.History = append(s.History, fmt.Sprintf("ai bets to %.1f", decision.BetSize))
		result.Outcome = ActionOutcome{Message: fmt.Sprintf("AI bets %.1fx BB.", decision.BetSize)}

	default:
		return AIActionResult{}, fmt.Errorf("%w: advisor returned %q", ErrInvalidAction, decision.Action)
	}

	return result, nil
}
