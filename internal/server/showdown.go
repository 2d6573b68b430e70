package server

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"preflop-advisor/internal/deck"
)

// ShowdownResult reports the resolved hand.
type ShowdownResult struct {
	Winner     string   `json:"winner"`
	Message    string   `json:"message"`
	PlayerHand string   `json:"player_hand"`
	AIHand     string   `json:"ai_hand"`
	PlayerDesc string   `json:"player_desc,omitempty"`
	AIDesc     string   `json:"ai_desc,omitempty"`
	Board      []string `json:"board"`
	Pot        float64  `json:"pot"`
}

// Showdown reveals the board, evaluates both seven-card hands, and
// awards the pot. A tie splits it.
func (s *Session) Showdown() (ShowdownResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GameOver && s.Winner != "" && s.Winner != "showdown" {
		return ShowdownResult{}, ErrGameOver
	}

	playerScore, playerDesc, err := eval7(s.PlayerHole, s.Board)
	if err != nil {
		return ShowdownResult{}, fmt.Errorf("evaluating player hand: %w", err)
	}
	aiScore, aiDesc, err := eval7(s.AIHole, s.Board)
	if err != nil {
		return ShowdownResult{}, fmt.Errorf("evaluating ai hand: %w", err)
	}

	result := ShowdownResult{
		PlayerHand: s.PlayerHand,
		AIHand:     s.AIHand,
		PlayerDesc: playerDesc,
		AIDesc:     aiDesc,
		Pot:        s.Pot,
	}
	for _, c := range s.Board {
		result.Board = append(result.Board, c.Code())
	}

	switch {
	case playerScore > aiScore:
		result.Winner = "player"
		result.Message = fmt.Sprintf("You win with %s against %s!", playerDesc, aiDesc)
		s.PlayerStack += s.Pot
	case aiScore > playerScore:
		result.Winner = "ai"
		result.Message = fmt.Sprintf("AI wins with %s against %s.", aiDesc, playerDesc)
		s.AIStack += s.Pot
	default:
		result.Winner = "tie"
		result.Message = "It's a tie! The pot is split."
		s.PlayerStack += s.Pot / 2
		s.AIStack += s.Pot / 2
	}

	s.GameOver = true
	s.Winner = result.Winner
	return result, nil
}

// eval7 scores two hole cards plus the five-card board. Higher scores
// beat lower ones.
func eval7(hole [2]deck.Card, board [5]deck.Card) (int16, string, error) {
	var cards [7]poker.Card
	all := append(hole[:], board[:]...)
	for i, c := range all {
		pc, err := toPokerCard(c)
		if err != nil {
			return 0, "", err
		}
		cards[i] = pc
	}

	desc, err := poker.Describe(cards[:])
	if err != nil {
		return 0, "", err
	}
	return poker.Eval7(&cards), desc, nil
}

// toPokerCard converts our card to the evaluator's representation, which
// counts aces as rank 1.
func toPokerCard(c deck.Card) (poker.Card, error) {
	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	default:
		suit = poker.Spade
	}

	rank := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		rank = poker.Rank(1)
	}
	return poker.MakeCard(suit, rank)
}
